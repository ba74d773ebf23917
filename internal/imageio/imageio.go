package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatQOI  Format = "qoi"
)

var (
	ErrUnsupportedOutputFormat = errors.New("output format must be lossless (png, bmp, tiff, or qoi for opaque images), lossy formats destroy embedded data")
)

// ReadImage decodes any registered format (png, jpeg, gif, bmp, tiff, webp, qoi) into a non premultiplied RGBA image.
func ReadImage(r io.Reader) (*image.NRGBA, string, error) {
	srcImage, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return ToNRGBA(srcImage), format, nil
}

func ReadImageFile(filePath string) (*image.NRGBA, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return ReadImage(f)
}

// ToNRGBA returns img itself when it is already NRGBA, since converting through premultiplied color would alter
// translucent pixels.
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}

	// TODO: Work with 16-bit images, their low bits are dropped here
	nrgba := image.NewNRGBA(img.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return nrgba
}

// FormatFromPath picks the output format from the file extension, defaulting to png when there is none.
func FormatFromPath(filePath string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), ".")); ext {
	case "", "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "qoi":
		return FormatQOI, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrUnsupportedOutputFormat, ext)
	}
}

func WriteImage(w io.Writer, img *image.NRGBA, format Format, pngCompressionLevel png.CompressionLevel) error {
	switch format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: pngCompressionLevel}
		return enc.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatQOI:
		// qoi encodes through premultiplied color, which alters the channel bytes of translucent pixels
		if !img.Opaque() {
			return fmt.Errorf("%w: qoi only keeps opaque images intact", ErrUnsupportedOutputFormat)
		}
		return qoi.Encode(w, img)
	default:
		return fmt.Errorf("%w: got %q", ErrUnsupportedOutputFormat, format)
	}
}

func WriteImageFile(filePath string, img *image.NRGBA, pngCompressionLevel png.CompressionLevel) error {
	format, err := FormatFromPath(filePath)
	if err != nil {
		return err
	}

	outputFile, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if err = WriteImage(outputFile, img, format, pngCompressionLevel); err != nil {
		outputFile.Close()
		return err
	}
	return outputFile.Close()
}
