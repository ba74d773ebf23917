package image

import (
	"image"
	"rgbsteg/pkg/config"
	"rgbsteg/pkg/model"
	"rgbsteg/pkg/payload"
	"time"
)

type Decoder struct {
	image  *image.NRGBA
	config config.ImageDecodeConfig
	stats  model.DecodeStats
}

func NewImageDecoder(image *image.NRGBA, dConfig config.ImageDecodeConfig) *Decoder {
	return &Decoder{
		image:  image,
		config: dConfig,
	}
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

func (d *Decoder) Decode() (DecodingResult, error) {
	d.stats = model.DecodeStats{}

	decodeStart := time.Now()
	result, err := Decode(d.image)
	d.stats.DataDecoding = time.Since(decodeStart)
	if err != nil {
		return DecodingResult{}, err
	}

	if d.config.DecompressPayload {
		decompressStart := time.Now()
		defer func() {
			d.stats.PayloadDecompression = time.Since(decompressStart)
		}()

		result.Data, err = payload.Decompress(result.Data)
		if err != nil {
			return DecodingResult{}, err
		}
	}

	return result, nil
}
