package server

import (
	"errors"
	"net/http"
	"rgbsteg/api"
	rgbstegImage "rgbsteg/pkg/image"
	"rgbsteg/pkg/payload"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_body", Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errImageOutput       = api.Error{Code: "output_error", Error: "Error generating output image"}
)

// codecErrorResponse maps errors from the codec to the status and body returned to clients. Anything unknown is
// reported as an internal error without leaking its message.
func codecErrorResponse(err error) (int, api.Error) {
	switch {
	case errors.Is(err, rgbstegImage.ErrInvalidOptions):
		return http.StatusBadRequest, api.Error{Code: "invalid_options", Error: err.Error()}
	case errors.Is(err, rgbstegImage.ErrCapacity):
		return http.StatusUnprocessableEntity, api.Error{Code: "capacity_exceeded", Error: err.Error()}
	case errors.Is(err, rgbstegImage.ErrInvalidHeader):
		return http.StatusUnprocessableEntity, api.Error{Code: "invalid_header", Error: err.Error()}
	case errors.Is(err, rgbstegImage.ErrTruncatedPayload):
		return http.StatusUnprocessableEntity, api.Error{Code: "truncated_payload", Error: err.Error()}
	case errors.Is(err, rgbstegImage.ErrAlignment):
		return http.StatusUnprocessableEntity, api.Error{Code: "unaligned_payload", Error: err.Error()}
	case errors.Is(err, payload.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, api.Error{Code: "payload_too_large", Error: err.Error()}
	default:
		return http.StatusInternalServerError, api.Error{Code: "internal_error", Error: "An error occurred while processing the image"}
	}
}
