package image

import (
	"fmt"
	"rgbsteg/internal/bits"
	"rgbsteg/pkg/config"
)

const (
	// channelFieldWidth holds values 0-15, enough for a 0-8 budget
	channelFieldWidth = 4
	channelFieldsSize = channelFieldWidth * config.ChannelsPerPixel
)

// Header precedes every embedded payload. DataLength is in bits.
type Header struct {
	Options    config.ChannelOptions `json:"options"`
	DataLength uint64                `json:"data_length"`
}

// IsValid reports whether the header could have been written by Encode. Images without an embedding usually fail
// this check.
func (h Header) IsValid() bool {
	return h.Options.InRange() && h.Options.BitsPerPixel() > 0
}

// lengthFieldWidth sizes the data length field from the capacity at full options, so it can be computed from the
// image dimensions alone.
func lengthFieldWidth(width, height int) int {
	return BitWidth(MaxRawCapacityBits(width, height, config.FullOptions()))
}

// HeaderSizeBits is the size of the header for a width x height image.
func HeaderSizeBits(width, height int) int {
	return channelFieldsSize + lengthFieldWidth(width, height)
}

// BuildHeaderBits lays out the four channel budgets as 4 bit fields followed by the data length, all big endian.
func BuildHeaderBits(header Header, width, height int) (*bits.Bits, error) {
	headerBits := bits.NewBits()
	for idx, budget := range header.Options.Budgets() {
		if uint64(budget) >= 1<<channelFieldWidth {
			return nil, fmt.Errorf("%w: channel %d budget %d does not fit in %d bits", ErrFieldOverflow, idx, budget,
				channelFieldWidth)
		}
		headerBits.AppendUint(uint64(budget), channelFieldWidth)
	}

	lengthWidth := lengthFieldWidth(width, height)
	if lengthWidth < 64 && header.DataLength >= 1<<uint(lengthWidth) {
		return nil, fmt.Errorf("%w: data length %d does not fit in %d bits", ErrFieldOverflow, header.DataLength,
			lengthWidth)
	}
	headerBits.AppendUint(header.DataLength, lengthWidth)
	return headerBits, nil
}

// ParseHeaderBits reads back a header built by BuildHeaderBits. Everything after the channel fields is taken as the
// data length, so the stream must hold exactly HeaderSizeBits bits.
func ParseHeaderBits(headerBits *bits.Bits) (Header, error) {
	lengthWidth := headerBits.Remaining() - channelFieldsSize
	if lengthWidth < 1 || lengthWidth > 64 {
		return Header{}, fmt.Errorf("%w: header of %d bits has no usable length field", ErrInvalidHeader,
			headerBits.Remaining())
	}

	var budgets [config.ChannelsPerPixel]byte
	for idx := range budgets {
		budget, _ := headerBits.ReadUint(channelFieldWidth)
		budgets[idx] = byte(budget)
	}
	dataLength, _ := headerBits.ReadUint(lengthWidth)

	return Header{
		Options: config.ChannelOptions{
			BitsRed:   budgets[0],
			BitsGreen: budgets[1],
			BitsBlue:  budgets[2],
			BitsAlpha: budgets[3],
		},
		DataLength: dataLength,
	}, nil
}
