package server

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"rgbsteg/api"
	"rgbsteg/api/rgbsteg/EncodeImage"
	"rgbsteg/internal/logging"
	"rgbsteg/pkg/config"
	"rgbsteg/pkg/payload"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

var (
	errPayloadAndText = api.Error{Code: "invalid_body", Error: "Only one of payload or text can be supplied"}
	errFlatbuffer     = api.Error{Code: "invalid_body", Error: "Request body is not a valid ImageEncodeRequest flatbuffer"}
)

// EncodeImageHandler godoc
//
// @Summary Encode a payload into the supplied image
// @Description This endpoint embeds the payload (or text) into the low order bits of the image channels selected by the options, and returns the encoded image as PNG. Options left at zero use 1 bit of red, green and blue
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.EncodeImageRequest true "Body with image to encode and payload to hide within the image, as well as the channel options"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(ctx *gin.Context) {
	var requestBody api.EncodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image encode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	data := requestBody.Payload
	if requestBody.Text != "" {
		if len(data) > 0 {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errPayloadAndText)
			return
		}
		data = payload.FromText(requestBody.Text)
	}

	img, ok := readRequestImage(ctx, logger, requestBody.ImageToEncode)
	if !ok {
		return
	}

	encodedImage, stats, err := encodeToPNG(img, config.ImageEncodeConfig{
		Options:             requestBody.Options,
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
		CompressPayload:     requestBody.CompressPayload,
	}, data, len(requestBody.ImageToEncode))
	if err != nil {
		abortWithCodecError(ctx, logger, err, "Error encoding payload into image")
		return
	}

	logger.WithStats(toHumanizedEncodeStats(stats)).Info("Image encoding was successful")

	ctx.JSON(http.StatusOK, api.EncodeImageResponse{EncodedImage: encodedImage})
}

// EncodeImageFlatbuffersHandler godoc
//
// @Summary Encode a payload into the supplied image, using flatbuffers
// @Description Same as /encode/image, but the request body is an ImageEncodeRequest flatbuffer and the response an ImageEncodeResponse flatbuffer, which avoids base64 encoding large images. Errors are returned as JSON
// @Tags image
// @Accept octet-stream
// @Produce octet-stream
// @Success 200 {file} binary
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image/fb [post]
func EncodeImageFlatbuffersHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing flatbuffers image encode request")

	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		logger.WithError(err).Error("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	fbRequest, err := parseFlatbuffersEncodeRequest(requestBody)
	if err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errFlatbuffer)
		return
	}

	img, ok := readRequestImage(ctx, logger, fbRequest.imageToEncode)
	if !ok {
		return
	}

	encodedImage, stats, err := encodeToPNG(img, config.ImageEncodeConfig{
		Options:             fbRequest.options,
		PngCompressionLevel: png.BestCompression,
	}, fbRequest.payload, len(fbRequest.imageToEncode))
	if err != nil {
		abortWithCodecError(ctx, logger, err, "Error encoding payload into image")
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage) + 64)
	encodedImageOffset := fbResponseBuilder.CreateByteVector(encodedImage)
	EncodeImage.ImageEncodeResponseStart(fbResponseBuilder)
	EncodeImage.ImageEncodeResponseAddEncodedImage(fbResponseBuilder, encodedImageOffset)
	fbResponseBuilder.Finish(EncodeImage.ImageEncodeResponseEnd(fbResponseBuilder))

	logger.WithStats(toHumanizedEncodeStats(stats)).Info("Image encoding was successful")

	ctx.Data(http.StatusOK, "application/octet-stream", fbResponseBuilder.FinishedBytes())
}

type flatbuffersEncodeRequest struct {
	options       config.ChannelOptions
	imageToEncode []byte
	payload       []byte
}

// parseFlatbuffersEncodeRequest reads every field up front. The generated accessors index the buffer without bounds
// checks, so offsets pointing outside a malformed body panic inside them, and that panic is returned as an error.
func parseFlatbuffersEncodeRequest(body []byte) (request flatbuffersEncodeRequest, err error) {
	if len(body) < flatbuffers.SizeUOffsetT {
		return request, errors.New("body shorter than root offset")
	}

	defer func() {
		if r := recover(); r != nil {
			request, err = flatbuffersEncodeRequest{}, fmt.Errorf("malformed flatbuffer: %v", r)
		}
	}()

	fbRequest := EncodeImage.GetRootAsImageEncodeRequest(body, 0)
	return flatbuffersEncodeRequest{
		options: config.ChannelOptions{
			BitsRed:   fbRequest.BitsRed(),
			BitsGreen: fbRequest.BitsGreen(),
			BitsBlue:  fbRequest.BitsBlue(),
			BitsAlpha: fbRequest.BitsAlpha(),
		},
		imageToEncode: fbRequest.ImageToEncodeBytes(),
		payload:       fbRequest.PayloadBytes(),
	}, nil
}
