package config

import (
	"errors"
	"fmt"
	"image/png"
)

const (
	DefaultChunkSizeMultiplier = 32 * 1024

	// MaxBitsPerChannel is the largest per channel budget, a whole channel byte.
	MaxBitsPerChannel = 8
	// ChannelsPerPixel is the number of channel bytes in every pixel, in R, G, B, A order.
	ChannelsPerPixel = 4
)

var (
	ErrInvalidOptions = errors.New("channel options must be within 0-8 bits and use at least one channel")
)

// ChannelOptions holds how many low order bits of each channel byte are reserved for payload. A value of 0 leaves
// the channel untouched.
type ChannelOptions struct {
	BitsRed   byte `json:"bits_red"`
	BitsGreen byte `json:"bits_green"`
	BitsBlue  byte `json:"bits_blue"`
	BitsAlpha byte `json:"bits_alpha"`
}

// HeaderOptions is the fixed budget every header is embedded with, so a decoder with no prior knowledge can find it.
func HeaderOptions() ChannelOptions {
	return ChannelOptions{BitsRed: 1, BitsGreen: 1, BitsBlue: 1, BitsAlpha: 0}
}

// FullOptions uses every bit of every channel. Header length fields are sized from it.
func FullOptions() ChannelOptions {
	return ChannelOptions{BitsRed: MaxBitsPerChannel, BitsGreen: MaxBitsPerChannel, BitsBlue: MaxBitsPerChannel, BitsAlpha: MaxBitsPerChannel}
}

// Uniform gives R, G and B the same budget and alpha its own.
func Uniform(bitsPerColorChannel, bitsAlpha byte) ChannelOptions {
	return ChannelOptions{BitsRed: bitsPerColorChannel, BitsGreen: bitsPerColorChannel, BitsBlue: bitsPerColorChannel, BitsAlpha: bitsAlpha}
}

// Budgets returns the options indexed by channel position within a pixel.
func (o ChannelOptions) Budgets() [ChannelsPerPixel]byte {
	return [ChannelsPerPixel]byte{o.BitsRed, o.BitsGreen, o.BitsBlue, o.BitsAlpha}
}

// BitsPerPixel is the number of payload bits a single pixel holds.
func (o ChannelOptions) BitsPerPixel() uint64 {
	return uint64(o.BitsRed) + uint64(o.BitsGreen) + uint64(o.BitsBlue) + uint64(o.BitsAlpha)
}

func (o ChannelOptions) InRange() bool {
	for _, budget := range o.Budgets() {
		if budget > MaxBitsPerChannel {
			return false
		}
	}
	return true
}

func (o ChannelOptions) Validate() error {
	if !o.InRange() || o.BitsPerPixel() == 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidOptions, o)
	}
	return nil
}

func (o ChannelOptions) String() string {
	return fmt.Sprintf("R%d G%d B%d A%d", o.BitsRed, o.BitsGreen, o.BitsBlue, o.BitsAlpha)
}

type ImageEncodeConfig struct {
	Options             ChannelOptions
	ChunkSizeMultiplier int
	PngCompressionLevel png.CompressionLevel
	CompressPayload     bool
}

func (c *ImageEncodeConfig) PopulateUnsetConfigVars() {
	if c.Options.BitsPerPixel() == 0 {
		c.Options = HeaderOptions()
	}
	if c.ChunkSizeMultiplier < 1 {
		c.ChunkSizeMultiplier = DefaultChunkSizeMultiplier
	}
}

type ImageDecodeConfig struct {
	DecompressPayload bool
}
