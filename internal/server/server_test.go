package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"rgbsteg/api"
	"rgbsteg/api/rgbsteg/EncodeImage"
	"rgbsteg/internal/imageio"
	"rgbsteg/pkg/config"
	rgbstegImage "rgbsteg/pkg/image"
	"rgbsteg/pkg/payload"
	"rgbsteg/test"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	flatbuffers "github.com/google/flatbuffers/go"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Error encoding test image: %s", err)
	}
	return buf.Bytes()
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	rawBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Error marshalling request body: %s", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(rawBody))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var response T
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Error unmarshalling response %s: %s", recorder.Body.String(), err)
	}
	return response
}

func TestEncodeDecodeText(t *testing.T) {
	router := NewRouter()
	sourceImage := pngBytes(t, test.GenerateImage(64, 64, false))
	options := config.ChannelOptions{BitsRed: 2, BitsGreen: 1, BitsBlue: 3, BitsAlpha: 1}

	encodeRecorder := postJSON(t, router, "/api/v1/encode/image", api.EncodeImageRequest{
		Options:       options,
		ImageToEncode: sourceImage,
		Text:          "meet at the usual place",
	})
	if encodeRecorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 from encode, got %d: %s", encodeRecorder.Code, encodeRecorder.Body.String())
	}
	encodeResponse := decodeResponse[api.EncodeImageResponse](t, encodeRecorder)

	decodeRecorder := postJSON(t, router, "/api/v1/decode/image", api.DecodeImageRequest{
		ImageToDecode: encodeResponse.EncodedImage,
	})
	if decodeRecorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 from decode, got %d: %s", decodeRecorder.Code, decodeRecorder.Body.String())
	}

	expected := api.DecodeImageResponse{
		Options:    options,
		DataLength: uint64(len("meet at the usual place")) * 8,
		Payload:    []byte("meet at the usual place"),
		Text:       "meet at the usual place",
	}
	if diff := cmp.Diff(expected, decodeResponse[api.DecodeImageResponse](t, decodeRecorder)); diff != "" {
		t.Errorf("Unexpected decode response (-want +got):\n%s", diff)
	}
}

func TestEncodeDecodeCompressedBinary(t *testing.T) {
	router := NewRouter()
	data := append([]byte{0xff, 0xfe, 0x00}, bytes.Repeat([]byte{1, 2, 3, 4}, 300)...)

	encodeRecorder := postJSON(t, router, "/api/v1/encode/image", api.EncodeImageRequest{
		ImageToEncode:   pngBytes(t, test.GenerateImage(32, 32, true)),
		Payload:         data,
		CompressPayload: true,
	})
	if encodeRecorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 from encode, got %d: %s", encodeRecorder.Code, encodeRecorder.Body.String())
	}

	decodeRecorder := postJSON(t, router, "/api/v1/decode/image", api.DecodeImageRequest{
		ImageToDecode:     decodeResponse[api.EncodeImageResponse](t, encodeRecorder).EncodedImage,
		DecompressPayload: true,
	})
	if decodeRecorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 from decode, got %d: %s", decodeRecorder.Code, decodeRecorder.Body.String())
	}

	decoded := decodeResponse[api.DecodeImageResponse](t, decodeRecorder)
	if !bytes.Equal(data, decoded.Payload) {
		t.Errorf("Payload changed through a compressed round trip")
	}
	if decoded.Text != "" {
		t.Errorf("Expected no text for a payload that is not valid UTF-8, got %q", decoded.Text)
	}
}

func TestEncodeErrors(t *testing.T) {
	router := NewRouter()
	smallImage := pngBytes(t, test.GenerateImage(8, 8, true))

	testCases := []struct {
		name         string
		body         any
		expectedCode int
		expectedErr  string
	}{
		{"InvalidJSON", "not an object", http.StatusBadRequest, "invalid_body"},
		{"MissingImage", api.EncodeImageRequest{Text: "hi"}, http.StatusBadRequest, "invalid_body"},
		{"InvalidImage", api.EncodeImageRequest{ImageToEncode: []byte("not an image")}, http.StatusBadRequest, "invalid_image"},
		{"PayloadAndText", api.EncodeImageRequest{ImageToEncode: smallImage, Payload: []byte{1}, Text: "hi"}, http.StatusBadRequest, "invalid_body"},
		{"InvalidOptions", api.EncodeImageRequest{ImageToEncode: smallImage, Options: config.Uniform(9, 0), Text: "hi"}, http.StatusBadRequest, "invalid_options"},
		{"OverCapacity", api.EncodeImageRequest{ImageToEncode: smallImage, Payload: make([]byte, 1024)}, http.StatusUnprocessableEntity, "capacity_exceeded"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := postJSON(t, router, "/api/v1/encode/image", tc.body)
			if recorder.Code != tc.expectedCode {
				t.Fatalf("Expected status %d, got %d: %s", tc.expectedCode, recorder.Code, recorder.Body.String())
			}
			if apiErr := decodeResponse[api.Error](t, recorder); apiErr.Code != tc.expectedErr {
				t.Errorf("Expected error code %s, got %s", tc.expectedErr, apiErr.Code)
			}
		})
	}
}

func TestDecodeUnencodedImage(t *testing.T) {
	// an all zero image has no channel budget in its header
	recorder := postJSON(t, NewRouter(), "/api/v1/decode/image", api.DecodeImageRequest{
		ImageToDecode: pngBytes(t, image.NewNRGBA(image.Rect(0, 0, 16, 16))),
	})
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if apiErr := decodeResponse[api.Error](t, recorder); apiErr.Code != "invalid_header" {
		t.Errorf("Expected invalid_header, got %s", apiErr.Code)
	}
}

func TestCapacity(t *testing.T) {
	recorder := postJSON(t, NewRouter(), "/api/v1/capacity/image", api.CapacityImageRequest{
		Options: config.Uniform(2, 0),
		Image:   pngBytes(t, test.GenerateImage(4, 4, true)),
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	expected := api.CapacityImageResponse{
		Width:                4,
		Height:               4,
		RawCapacityBits:      96,
		PayloadCapacityBytes: 5,
		PayloadCapacityHuman: "5 B",
	}
	if diff := cmp.Diff(expected, decodeResponse[api.CapacityImageResponse](t, recorder)); diff != "" {
		t.Errorf("Unexpected capacity response (-want +got):\n%s", diff)
	}

	recorder = postJSON(t, NewRouter(), "/api/v1/capacity/image", api.CapacityImageRequest{
		Options: config.Uniform(0, 12),
		Image:   pngBytes(t, test.GenerateImage(4, 4, true)),
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid options, got %d", recorder.Code)
	}
}

func TestPreview(t *testing.T) {
	source := test.GenerateImage(32, 32, true)
	recorder := postJSON(t, NewRouter(), "/api/v1/preview/image", api.PreviewImageRequest{
		Options:        config.Uniform(4, 0),
		ImageToPreview: pngBytes(t, source),
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	preview, _, err := imageio.ReadImage(bytes.NewReader(decodeResponse[api.PreviewImageResponse](t, recorder).PreviewImage))
	if err != nil {
		t.Fatalf("Error reading preview image: %s", err)
	}
	for i := range source.Pix {
		if source.Pix[i]&0xf0 != preview.Pix[i]&0xf0 {
			t.Fatalf("Preview changed bits outside the budget at channel byte %d", i)
		}
	}
}

func buildFlatbuffersRequest(options config.ChannelOptions, imageToEncode, data []byte) []byte {
	builder := flatbuffers.NewBuilder(len(imageToEncode) + len(data) + 64)
	imageOffset := builder.CreateByteVector(imageToEncode)
	payloadOffset := builder.CreateByteVector(data)

	EncodeImage.ImageEncodeRequestStart(builder)
	EncodeImage.ImageEncodeRequestAddBitsRed(builder, options.BitsRed)
	EncodeImage.ImageEncodeRequestAddBitsGreen(builder, options.BitsGreen)
	EncodeImage.ImageEncodeRequestAddBitsBlue(builder, options.BitsBlue)
	EncodeImage.ImageEncodeRequestAddBitsAlpha(builder, options.BitsAlpha)
	EncodeImage.ImageEncodeRequestAddImageToEncode(builder, imageOffset)
	EncodeImage.ImageEncodeRequestAddPayload(builder, payloadOffset)
	EncodeImage.FinishImageEncodeRequestBuffer(builder, EncodeImage.ImageEncodeRequestEnd(builder))
	return builder.FinishedBytes()
}

func TestEncodeFlatbuffers(t *testing.T) {
	options := config.Uniform(3, 0)
	data := test.GenerateRandomBytes(512)
	body := buildFlatbuffersRequest(options, pngBytes(t, test.GenerateImage(64, 64, true)), data)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/encode/image/fb", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/octet-stream")
	recorder := httptest.NewRecorder()
	NewRouter().ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	response := EncodeImage.GetRootAsImageEncodeResponse(recorder.Body.Bytes(), 0)
	encoded, _, err := imageio.ReadImage(bytes.NewReader(response.EncodedImageBytes()))
	if err != nil {
		t.Fatalf("Error reading encoded image from flatbuffer response: %s", err)
	}

	result, err := rgbstegImage.Decode(encoded)
	if err != nil {
		t.Fatalf("Error decoding image: %s", err)
	}
	if result.Header.Options != options || !bytes.Equal(data, result.Data) {
		t.Errorf("Unexpected decode result %s|%d bytes", result.Header.Options, len(result.Data))
	}
}

func TestEncodeFlatbuffersErrors(t *testing.T) {
	validRequest := buildFlatbuffersRequest(config.Uniform(1, 0), pngBytes(t, test.GenerateImage(16, 16, true)), []byte("hi"))
	testCases := map[string][]byte{
		"ShortBody":        {1, 2},
		"RootOutOfRange":   {0xff, 0xff, 0, 0, 0, 0, 0, 0},
		"TruncatedRequest": validRequest[:len(validRequest)/2],
		"InvalidImage":     buildFlatbuffersRequest(config.Uniform(1, 0), []byte("not an image"), nil),
	}
	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			NewRouter().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/encode/image/fb", bytes.NewReader(body)))
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestParseFlatbuffersEncodeRequest(t *testing.T) {
	request, err := parseFlatbuffersEncodeRequest(buildFlatbuffersRequest(config.Uniform(2, 1), []byte{1, 2, 3}, []byte("hi")))
	if err != nil {
		t.Fatalf("Error parsing a well formed request: %s", err)
	}
	if request.options != config.Uniform(2, 1) || !bytes.Equal(request.imageToEncode, []byte{1, 2, 3}) || string(request.payload) != "hi" {
		t.Errorf("Unexpected parsed request %+v", request)
	}

	if _, err = parseFlatbuffersEncodeRequest([]byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0, 0, 0}); err == nil {
		t.Errorf("Expected an error for a root offset outside the body")
	}
}

func TestCodecErrorResponse(t *testing.T) {
	testCases := []struct {
		err          error
		expectedCode int
	}{
		{fmt.Errorf("%w: got R9 G0 B0 A0", config.ErrInvalidOptions), http.StatusBadRequest},
		{rgbstegImage.ErrCapacity, http.StatusUnprocessableEntity},
		{rgbstegImage.ErrInvalidHeader, http.StatusUnprocessableEntity},
		{rgbstegImage.ErrTruncatedPayload, http.StatusUnprocessableEntity},
		{rgbstegImage.ErrAlignment, http.StatusUnprocessableEntity},
		{payload.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		status, body := codecErrorResponse(tc.err)
		if status != tc.expectedCode {
			t.Errorf("Expected %d for %q, got %d", tc.expectedCode, tc.err, status)
		}
		if status == http.StatusInternalServerError && body.Error == tc.err.Error() {
			t.Errorf("Internal error message leaked to the client")
		}
	}
}

func TestLogFormatterProducesJSON(t *testing.T) {
	line := logFormatter(gin.LogFormatterParams{
		TimeStamp:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		StatusCode:   http.StatusUnprocessableEntity,
		Latency:      2 * time.Minute,
		ClientIP:     "127.0.0.1",
		Method:       http.MethodPost,
		Path:         "/api/v1/encode/image",
		ErrorMessage: `quoted "error"`,
		BodySize:     2048,
	})

	var entry accessLogEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("Log line is not valid JSON: %s", err)
	}
	if entry.ResponseSize != "2.0 kB" || entry.Error != `quoted "error"` || entry.Timestamp != "2024-01-02T03:04:05.000Z" {
		t.Errorf("Unexpected log entry %+v", entry)
	}
}

func TestSwaggerDocsServed(t *testing.T) {
	recorder := httptest.NewRecorder()
	NewRouter().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if recorder.Code != http.StatusOK || !bytes.Contains(recorder.Body.Bytes(), []byte("/encode/image/fb")) {
		t.Errorf("Expected swagger document to be served, got %d", recorder.Code)
	}
}
