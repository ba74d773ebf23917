package image

import (
	"fmt"
	"image"
	"rgbsteg/pkg/config"
	"testing"
)

const testImageSize = 64

type testFunc func(t *testing.T, options config.ChannelOptions, opaque bool)

// allTestOptions covers every color channel budget with a few alpha budgets, skipping the all zero case.
func allTestOptions() []config.ChannelOptions {
	var options []config.ChannelOptions
	for bitsPerColorChannel := byte(0); bitsPerColorChannel <= config.MaxBitsPerChannel; bitsPerColorChannel++ {
		for _, bitsAlpha := range []byte{0, 1, config.MaxBitsPerChannel} {
			o := config.Uniform(bitsPerColorChannel, bitsAlpha)
			if o.BitsPerPixel() > 0 {
				options = append(options, o)
			}
		}
	}
	return append(options, config.ChannelOptions{BitsRed: 3, BitsGreen: 0, BitsBlue: 5, BitsAlpha: 2})
}

func runImageTestsWithAllOptionsAndOpaquenessSettings(t *testing.T, testFunc testFunc) {
	for _, options := range allTestOptions() {
		t.Run(fmt.Sprintf("Options-%d-%d-%d-%d", options.BitsRed, options.BitsGreen, options.BitsBlue,
			options.BitsAlpha), func(t *testing.T) {
			t.Parallel()
			t.Run("opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, options, true)
			})
			t.Run("non-opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, options, false)
			})
		})
	}
}

func calculateBytesThatFitInImage(img image.Image, options config.ChannelOptions) int {
	bounds := img.Bounds()
	return int(PayloadCapacityBits(bounds.Dx(), bounds.Dy(), options) / 8)
}

func getOpaquenessLabel(opaque bool) string {
	if opaque {
		return "opaque"
	} else {
		return "non-opaque"
	}
}
