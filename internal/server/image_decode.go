package server

import (
	"net/http"
	"rgbsteg/api"
	"rgbsteg/internal/logging"
	"rgbsteg/pkg/config"
	rgbstegImage "rgbsteg/pkg/image"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// DecodeImageHandler godoc
//
// @Summary Decode data from an image
// @Description This endpoint will decode the payload previously encoded in the supplied image. The payload is returned base64 encoded, and also as text when it is valid UTF-8
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeImageRequest true "Body with image to decode"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(ctx *gin.Context) {
	var requestBody api.DecodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image decode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	img, ok := readRequestImage(ctx, logger, requestBody.ImageToDecode)
	if !ok {
		return
	}

	imageDecoder := rgbstegImage.NewImageDecoder(img, config.ImageDecodeConfig{
		DecompressPayload: requestBody.DecompressPayload,
	})
	result, err := imageDecoder.Decode()
	if err != nil {
		abortWithCodecError(ctx, logger, err, "Error decoding data from image")
		return
	}

	logger.WithStats(toHumanizedDecodeStats(imageDecoder.Stats())).Info("Image decoding was successful")

	response := api.DecodeImageResponse{
		Options:    result.Header.Options,
		DataLength: result.Header.DataLength,
		Payload:    result.Data,
	}
	if utf8.Valid(result.Data) {
		response.Text = string(result.Data)
	}
	ctx.JSON(http.StatusOK, response)
}
