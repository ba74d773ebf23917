package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"rgbsteg/pkg/config"
	"rgbsteg/pkg/model"
	"rgbsteg/pkg/payload"
	"time"
)

var (
	ErrNothingEncoded = errors.New("nothing has been encoded yet, there is no output image to write")
)

// Encoder keeps the source image untouched and holds the result of the last encode along with its timings.
type Encoder struct {
	image   *image.NRGBA
	encoded *image.NRGBA

	config config.ImageEncodeConfig
	stats  model.EncodeStats
}

func NewImageEncoder(image *image.NRGBA, iConfig config.ImageEncodeConfig) (*Encoder, error) {
	iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Options.Validate(); err != nil {
		return nil, err
	}

	return &Encoder{
		image:  image,
		config: iConfig,
	}, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// Capacity is the raw payload capacity of the source image in bits, header excluded.
func (e *Encoder) Capacity() uint64 {
	return MaxRawCapacity(e.image, e.config.Options)
}

func (e *Encoder) EncodedImage() *image.NRGBA {
	return e.encoded
}

func (e *Encoder) Encode(dataReader io.Reader) error {
	data, err := io.ReadAll(dataReader)
	if err != nil {
		return err
	}
	return e.EncodeBytes(data)
}

// EncodeFile rejects files that cannot fit before reading them into memory.
func (e *Encoder) EncodeFile(file model.InputFile) error {
	if !e.config.CompressPayload && uint64(file.Size)*8 > e.Capacity() {
		return fmt.Errorf("%w: %s is %d bytes, image holds at most %d", ErrCapacity, file.Name, file.Size,
			e.Capacity()/8)
	}

	data, err := payload.Read(file, payload.MaxPayloadSize)
	if err != nil {
		return err
	}
	return e.EncodeBytes(data)
}

func (e *Encoder) EncodeBytes(data []byte) error {
	e.stats = model.EncodeStats{}

	setupStart := time.Now()
	if e.config.CompressPayload {
		data = payload.Compress(data)
	}
	e.stats.Setup = time.Since(setupStart)

	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	encoded, err := Encode(e.image, e.config.Options, data)
	if err != nil {
		return err
	}
	e.encoded = encoded
	return nil
}

// EncodeRandom fills the budgeted bits with noise instead of a payload.
func (e *Encoder) EncodeRandom() {
	e.stats = model.EncodeStats{}

	encodeStart := time.Now()
	e.encoded = encodeRandom(e.image, e.config.Options, e.config.ChunkSizeMultiplier)
	e.stats.DataEncoding = time.Since(encodeStart)
}

func (e *Encoder) WriteEncodedPNG(output io.Writer) error {
	if e.encoded == nil {
		return ErrNothingEncoded
	}

	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	enc := png.Encoder{CompressionLevel: e.config.PngCompressionLevel}
	return enc.Encode(output, e.encoded)
}
