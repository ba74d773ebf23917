package server

import (
	"bytes"
	"image/png"
	"net/http"
	"rgbsteg/api"
	"rgbsteg/internal/logging"
	"rgbsteg/pkg/config"
	rgbstegImage "rgbsteg/pkg/image"

	"github.com/gin-gonic/gin"
)

// PreviewImageHandler godoc
//
// @Summary Preview the distortion of an encode
// @Description This endpoint fills every budgeted bit of the image with random data, showing how an image at full capacity would look with the supplied options
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.PreviewImageRequest true "Body with image and channel options"
// @Success 200 {object} api.PreviewImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /preview/image [post]
func PreviewImageHandler(ctx *gin.Context) {
	var requestBody api.PreviewImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image preview request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	img, ok := readRequestImage(ctx, logger, requestBody.ImageToPreview)
	if !ok {
		return
	}

	imageEncoder, err := rgbstegImage.NewImageEncoder(img, config.ImageEncodeConfig{
		Options:             requestBody.Options,
		PngCompressionLevel: png.BestCompression,
	})
	if err != nil {
		abortWithCodecError(ctx, logger, err, "Invalid channel options")
		return
	}
	imageEncoder.EncodeRandom()

	previewBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.ImageToPreview)))
	if err = imageEncoder.WriteEncodedPNG(previewBuffer); err != nil {
		logger.WithError(err).Error("Error writing preview image")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errImageOutput)
		return
	}

	logger.WithStats(toHumanizedEncodeStats(imageEncoder.Stats())).Info("Image preview was successful")

	ctx.JSON(http.StatusOK, api.PreviewImageResponse{PreviewImage: previewBuffer.Bytes()})
}
