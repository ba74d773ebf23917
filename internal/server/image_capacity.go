package server

import (
	"net/http"
	"rgbsteg/api"
	"rgbsteg/internal/logging"
	"rgbsteg/pkg/config"
	rgbstegImage "rgbsteg/pkg/image"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// CapacityImageHandler godoc
//
// @Summary Report how much data an image can hold
// @Description This endpoint returns the raw capacity of the image for the supplied options, and the exact number of payload bytes that fit once the header is embedded
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityImageRequest true "Body with image and channel options"
// @Success 200 {object} api.CapacityImageResponse
// @Failure 400 {object} api.Error
// @Router /capacity/image [post]
func CapacityImageHandler(ctx *gin.Context) {
	var requestBody api.CapacityImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	iConfig := config.ImageEncodeConfig{Options: requestBody.Options}
	iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Options.Validate(); err != nil {
		abortWithCodecError(ctx, logger, err, "Invalid channel options")
		return
	}

	img, ok := readRequestImage(ctx, logger, requestBody.Image)
	if !ok {
		return
	}

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	payloadCapacityBytes := rgbstegImage.PayloadCapacityBits(width, height, iConfig.Options) / 8
	ctx.JSON(http.StatusOK, api.CapacityImageResponse{
		Width:                width,
		Height:               height,
		RawCapacityBits:      rgbstegImage.MaxRawCapacityBits(width, height, iConfig.Options),
		PayloadCapacityBytes: payloadCapacityBytes,
		PayloadCapacityHuman: humanize.Bytes(payloadCapacityBytes),
	})
}
