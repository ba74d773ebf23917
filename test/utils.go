package test

import (
	"image"
	"image/color"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateImage builds a width x height NRGBA image filled with random colors. When opaque is set every pixel gets
// an alpha of 255, otherwise alpha is random as well.
func GenerateImage(width, height int, opaque bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if !opaque {
				alpha = randUint8()
			}
			img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: alpha})
		}
	}
	return img
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
