package image

import (
	"image"
	mathbits "math/bits"
	"rgbsteg/internal/bits"
	"rgbsteg/pkg/config"
)

// MaxRawCapacityBits is the number of payload bits a width x height image can hold with the given options. Header
// overhead is not subtracted.
func MaxRawCapacityBits(width, height int, options config.ChannelOptions) uint64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return uint64(width) * uint64(height) * options.BitsPerPixel()
}

// MaxRawCapacity is MaxRawCapacityBits for the dimensions of img.
func MaxRawCapacity(img image.Image, options config.ChannelOptions) uint64 {
	bounds := img.Bounds()
	return MaxRawCapacityBits(bounds.Dx(), bounds.Dy(), options)
}

// BitWidth is the number of binary digits needed to write n, at least one.
func BitWidth(n uint64) int {
	if n == 0 {
		return 1
	}
	return mathbits.Len64(n)
}

// PayloadCapacityBits is the largest payload, in bits, that Encode accepts for a width x height image. It accounts
// for where the header leaves the channel cursor and for the conservative size check Encode runs first, so it never
// exceeds MaxRawCapacityBits minus the header size.
func PayloadCapacityBits(width, height int, options config.ChannelOptions) uint64 {
	if width <= 0 || height <= 0 || options.BitsPerPixel() == 0 {
		return 0
	}

	headerSize := HeaderSizeBits(width, height)
	rawCapacity := MaxRawCapacityBits(width, height, options)
	if uint64(headerSize) >= rawCapacity {
		return 0
	}

	// Run the header pass over a scratch buffer just big enough to see where it stops
	headerOptions := config.HeaderOptions()
	channels := width * height * config.ChannelsPerPixel
	scratchPixels := headerSize/int(headerOptions.BitsPerPixel()) + 2
	walker := newChannelWalker(make([]byte, min(channels, scratchPixels*config.ChannelsPerPixel)))
	if !walker.write(bits.FromBits(make([]uint8, headerSize)), headerOptions) {
		return 0
	}

	budgets := options.Budgets()
	var capacity uint64
	p := walker.cursor
	for ; p < channels && p%config.ChannelsPerPixel != 0; p++ {
		capacity += uint64(budgets[p%config.ChannelsPerPixel])
	}
	if p < channels {
		capacity += uint64((channels-p)/config.ChannelsPerPixel) * options.BitsPerPixel()
	}

	return min(capacity, rawCapacity-uint64(headerSize))
}
