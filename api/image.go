package api

import "rgbsteg/pkg/config"

type EncodeImageRequest struct {
	Options         config.ChannelOptions `json:"options"`
	ImageToEncode   []byte                `json:"image_to_encode" binding:"required"`
	Payload         []byte                `json:"payload"`
	Text            string                `json:"text"`
	CompressPayload bool                  `json:"compress_payload"`
}

type EncodeImageResponse struct {
	EncodedImage []byte `json:"encoded_image"`
}

type DecodeImageRequest struct {
	ImageToDecode     []byte `json:"image_to_decode" binding:"required"`
	DecompressPayload bool   `json:"decompress_payload"`
}

// DecodeImageResponse carries the payload as base64, and additionally as text when it is valid UTF-8.
type DecodeImageResponse struct {
	Options    config.ChannelOptions `json:"options"`
	DataLength uint64                `json:"data_length"`
	Payload    []byte                `json:"payload"`
	Text       string                `json:"text,omitempty"`
}

type CapacityImageRequest struct {
	Options config.ChannelOptions `json:"options"`
	Image   []byte                `json:"image" binding:"required"`
}

type CapacityImageResponse struct {
	Width                int    `json:"width"`
	Height               int    `json:"height"`
	RawCapacityBits      uint64 `json:"raw_capacity_bits"`
	PayloadCapacityBytes uint64 `json:"payload_capacity_bytes"`
	PayloadCapacityHuman string `json:"payload_capacity_human"`
}

type PreviewImageRequest struct {
	Options        config.ChannelOptions `json:"options"`
	ImageToPreview []byte                `json:"image_to_preview" binding:"required"`
}

type PreviewImageResponse struct {
	PreviewImage []byte `json:"preview_image"`
}
