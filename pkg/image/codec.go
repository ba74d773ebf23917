package image

import (
	"errors"
	"fmt"
	"image"
	"rgbsteg/internal/bits"
	"rgbsteg/pkg/config"
	"sync"
)

var (
	ErrCapacity         = errors.New("supplied image not big enough to contain the payload, either choose another image or increase the bits to use per channel")
	ErrInvalidHeader    = errors.New("image does not contain a valid header, it was likely not encoded using rgbsteg")
	ErrTruncatedPayload = errors.New("image ended before the declared payload could be read, it is corrupt or was not encoded using rgbsteg")
	ErrFieldOverflow    = errors.New("value does not fit in its header field")

	ErrAlignment      = bits.ErrAlignment
	ErrInvalidOptions = config.ErrInvalidOptions
)

// DecodingResult is what Decode recovers from an image.
type DecodingResult struct {
	Header Header
	Data   []byte
}

// Encode embeds payload into a copy of img, header first and then the payload, using options for the payload. The
// source image is not modified.
func Encode(img *image.NRGBA, options config.ChannelOptions, payload []byte) (*image.NRGBA, error) {
	// all zero options are in range, they have no capacity and fail the size check below
	if !options.InRange() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidOptions, options)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	payloadBits := bits.FromBytes(payload)

	// Sized with the payload options even though the header is written with HeaderOptions, the write pass below is
	// what catches an image that is really too small
	requiredBits := uint64(HeaderSizeBits(width, height)) + uint64(payloadBits.Len())
	availableBits := MaxRawCapacityBits(width, height, options)
	if requiredBits > availableBits {
		return nil, fmt.Errorf("%w: need %d bits, image holds %d with %s", ErrCapacity, requiredBits, availableBits,
			options)
	}

	headerBits, err := BuildHeaderBits(Header{Options: options, DataLength: uint64(payloadBits.Len())}, width, height)
	if err != nil {
		return nil, err
	}

	encoded := cloneImage(img)
	walker := newChannelWalker(encoded.Pix)
	if !walker.write(headerBits, config.HeaderOptions()) {
		return nil, fmt.Errorf("%w: header of %d bits does not fit", ErrCapacity, HeaderSizeBits(width, height))
	}
	if !walker.write(payloadBits, options) {
		return nil, fmt.Errorf("%w: ran out of channel bytes while writing %d payload bits with %s", ErrCapacity,
			payloadBits.Len(), options)
	}

	return encoded, nil
}

// Decode reads the header with HeaderOptions, then the payload with the options the header declares.
func Decode(img *image.NRGBA) (DecodingResult, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	walker := newChannelWalker(compactPix(img))

	headerSize := HeaderSizeBits(width, height)
	headerBits := bits.NewBits()
	if !walker.read(headerBits, headerSize, config.HeaderOptions()) {
		return DecodingResult{}, fmt.Errorf("%w: image too small to hold a %d bit header", ErrInvalidHeader,
			headerSize)
	}

	header, err := ParseHeaderBits(headerBits)
	if err != nil {
		return DecodingResult{}, err
	}
	if !header.IsValid() {
		return DecodingResult{}, fmt.Errorf("%w: decoded channel options %s", ErrInvalidHeader, header.Options)
	}

	payloadBits := bits.NewBits()
	if !walker.read(payloadBits, int(header.DataLength), header.Options) {
		return DecodingResult{}, fmt.Errorf("%w: read %d of %d bits", ErrTruncatedPayload, payloadBits.Len(),
			header.DataLength)
	}

	data, err := payloadBits.ToBytes()
	if err != nil {
		return DecodingResult{}, err
	}

	return DecodingResult{Header: header, Data: data}, nil
}

// EncodeRandom fills every budgeted bit of a copy of img with random data, which previews how an image degrades at
// the given options. There is no header.
func EncodeRandom(img *image.NRGBA, options config.ChannelOptions) *image.NRGBA {
	return encodeRandom(img, options, config.DefaultChunkSizeMultiplier)
}

// encodeRandom splits the channel bytes into chunks of whole pixels, each filled by its own goroutine and random
// stream.
func encodeRandom(img *image.NRGBA, options config.ChannelOptions, chunkSizeMultiplier int) *image.NRGBA {
	encoded := cloneImage(img)
	chunkSize := chunkSizeMultiplier * config.ChannelsPerPixel

	var wg sync.WaitGroup
	for start := 0; start < len(encoded.Pix); start += chunkSize {
		end := min(start+chunkSize, len(encoded.Pix))
		wg.Add(1)
		go func(chunk []byte) {
			defer wg.Done()
			newChannelWalker(chunk).write(bits.NewRandom(), options)
		}(encoded.Pix[start:end])
	}
	wg.Wait()

	return encoded
}

// cloneImage copies img into a new image with the same bounds whose rows are contiguous, so channel bytes can be
// walked as one slice.
func cloneImage(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	clone := image.NewNRGBA(bounds)
	rowSize := bounds.Dx() * config.ChannelsPerPixel
	for y := 0; y < bounds.Dy(); y++ {
		srcOffset := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(clone.Pix[y*clone.Stride:y*clone.Stride+rowSize], img.Pix[srcOffset:srcOffset+rowSize])
	}
	return clone
}

// compactPix returns the channel bytes of img without row padding, copying only when needed.
func compactPix(img *image.NRGBA) []byte {
	bounds := img.Bounds()
	size := bounds.Dx() * bounds.Dy() * config.ChannelsPerPixel
	if img.Stride == bounds.Dx()*config.ChannelsPerPixel && img.PixOffset(bounds.Min.X, bounds.Min.Y) == 0 {
		return img.Pix[:size]
	}
	return cloneImage(img).Pix
}
