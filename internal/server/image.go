package server

import (
	"bytes"
	"image"
	"net/http"
	"rgbsteg/internal/imageio"
	"rgbsteg/internal/logging"
	"rgbsteg/pkg/config"
	rgbstegImage "rgbsteg/pkg/image"
	"rgbsteg/pkg/model"

	"github.com/gin-gonic/gin"
)

func readRequestImage(ctx *gin.Context, logger *logging.Logger, rawImage []byte) (*image.NRGBA, bool) {
	img, format, err := imageio.ReadImage(bytes.NewReader(rawImage))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return nil, false
	}

	logger.Debug("Decoded request image", "format", format, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, true
}

func abortWithCodecError(ctx *gin.Context, logger *logging.Logger, err error, msg string) {
	logger.WithError(err).Error(msg)
	status, body := codecErrorResponse(err)
	ctx.AbortWithStatusJSON(status, body)
}

// encodeToPNG embeds data and returns the encoded image as PNG. sizeHint preallocates the output buffer, the
// encoded image should be close in size to the original.
func encodeToPNG(img *image.NRGBA, iConfig config.ImageEncodeConfig, data []byte, sizeHint int) ([]byte, model.EncodeStats, error) {
	imageEncoder, err := rgbstegImage.NewImageEncoder(img, iConfig)
	if err != nil {
		return nil, model.EncodeStats{}, err
	}
	if err = imageEncoder.EncodeBytes(data); err != nil {
		return nil, imageEncoder.Stats(), err
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if err = imageEncoder.WriteEncodedPNG(encodedImageBuffer); err != nil {
		return nil, imageEncoder.Stats(), err
	}
	return encodedImageBuffer.Bytes(), imageEncoder.Stats(), nil
}
