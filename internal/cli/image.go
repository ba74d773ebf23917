package cli

import (
	"fmt"
	"image/png"
	"io"
	"rgbsteg/internal/imageio"
	"rgbsteg/internal/logging"
	"rgbsteg/pkg/config"
	rgbstegImage "rgbsteg/pkg/image"
	"rgbsteg/pkg/model"
	"rgbsteg/pkg/payload"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

func ImageCommands(root *rootOpts) *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs steganography operations on images",
		Example: "rgbsteg image encode --image source.png --output-file output.png --file secret.txt --bits 2",
	}

	imageCmd.AddCommand(
		encodeImageCommand(root),
		decodeImageCommand(root),
		capacityImageCommand(),
		previewImageCommand(root),
	)
	return imageCmd
}

type channelFlags struct {
	bits      uint8
	bitsRed   uint8
	bitsGreen uint8
	bitsBlue  uint8
	bitsAlpha uint8
}

func addChannelFlags(cmd *cobra.Command, f *channelFlags) {
	cmd.Flags().Uint8Var(&f.bits, "bits", 1, "Low order bits to use from each of the red, green and blue channels. Can be 0-8. The more bits are used, the more distortion will be noticeable in the final image")
	cmd.Flags().Uint8Var(&f.bitsRed, "bits-red", 0, "Bits to use from the red channel, overrides --bits")
	cmd.Flags().Uint8Var(&f.bitsGreen, "bits-green", 0, "Bits to use from the green channel, overrides --bits")
	cmd.Flags().Uint8Var(&f.bitsBlue, "bits-blue", 0, "Bits to use from the blue channel, overrides --bits")
	cmd.Flags().Uint8Var(&f.bitsAlpha, "bits-alpha", 0, "Bits to use from the alpha channel. Can be 0-8")
}

func (f channelFlags) toOptions(cmd *cobra.Command) config.ChannelOptions {
	options := config.Uniform(f.bits, f.bitsAlpha)
	if cmd.Flags().Changed("bits-red") {
		options.BitsRed = f.bitsRed
	}
	if cmd.Flags().Changed("bits-green") {
		options.BitsGreen = f.bitsGreen
	}
	if cmd.Flags().Changed("bits-blue") {
		options.BitsBlue = f.bitsBlue
	}
	return options
}

func mapPngCompression(pngCompression string) (png.CompressionLevel, error) {
	mappedCompression, found := pngCompressionMapping[pngCompression]
	if !found {
		return 0, fmt.Errorf("unknown png compression %q, options are default, none, fast, best", pngCompression)
	}
	return mappedCompression, nil
}

type encodeImageOpts struct {
	sourceImage    string
	outputImage    string
	file           string
	text           string
	channels       channelFlags
	pngCompression string
	compress       bool
}

func encodeImageCommand(root *rootOpts) *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "rgbsteg image encode --image source.png --output-file output.png --text \"meet at noon\" --bits 2 --bits-alpha 1",
		Short:   "Encode a file or text into an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			compressionLevel, err := mapPngCompression(opts.pngCompression)
			if err != nil {
				return err
			}
			if opts.channels.toOptions(cmd).BitsPerPixel() == 0 {
				return fmt.Errorf("%w: at least one channel needs a non zero bit budget", config.ErrInvalidOptions)
			}

			return EncodeImage(cmd.OutOrStdout(), cmd.ErrOrStderr(), root.logger(cmd), opts, config.ImageEncodeConfig{
				Options:             opts.channels.toOptions(cmd),
				PngCompressionLevel: compressionLevel,
				CompressPayload:     opts.compress,
			})
		},
	}

	encImgCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to encode data to, can be png, jpeg, gif, bmp, tiff, webp or qoi")
	encImgCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the encoded image that will be generated, must be png, bmp, tiff, or qoi for opaque images")
	encImgCmd.Flags().StringVar(&opts.file, "file", "", "File to encode into the source image")
	encImgCmd.Flags().StringVar(&opts.text, "text", "", "Text to encode into the source image")
	addChannelFlags(encImgCmd, &opts.channels)
	encImgCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	encImgCmd.Flags().BoolVar(&opts.compress, "compress", false, "Compress the payload with zstd before encoding it, decode it with --decompress")

	MarkFlagsRequired(encImgCmd, "image", "output-file")
	encImgCmd.MarkFlagsOneRequired("file", "text")
	encImgCmd.MarkFlagsMutuallyExclusive("file", "text")

	return encImgCmd
}

func EncodeImage(out, progress io.Writer, logger *logging.Logger, opts encodeImageOpts, iConfig config.ImageEncodeConfig) error {
	s := NewSpinner(progress)
	s.Prefix = "Reading source image "
	s.Start()
	defer s.Stop()

	srcImage, format, err := imageio.ReadImageFile(opts.sourceImage)
	if err != nil {
		return err
	}
	logger.Debug("Read source image", "format", format, "width", srcImage.Bounds().Dx(), "height", srcImage.Bounds().Dy())

	iEncoder, err := rgbstegImage.NewImageEncoder(srcImage, iConfig)
	if err != nil {
		return err
	}

	s.Prefix = "Encoding data "
	payloadName := "text"
	if opts.file != "" {
		inputFile, err := payload.FromFile(opts.file)
		if err != nil {
			return err
		}
		if closer, ok := inputFile.Content.(io.Closer); ok {
			defer closer.Close()
		}

		payloadName = inputFile.Name
		err = iEncoder.EncodeFile(inputFile)
		if err != nil {
			return err
		}
	} else if err = iEncoder.EncodeBytes(payload.FromText(opts.text)); err != nil {
		return err
	}

	s.Prefix = "Writing output image "
	writeStart := time.Now()
	if err = imageio.WriteImageFile(opts.outputImage, iEncoder.EncodedImage(), iConfig.PngCompressionLevel); err != nil {
		return err
	}
	s.Stop()

	logger.WithStats(iEncoder.Stats()).Info("Encoded data into image", "output_image_encoding", time.Since(writeStart).String())
	fmt.Fprintf(out, "Generated %s with %s encoded using %s\n", opts.outputImage, payloadName, iConfig.Options)
	return nil
}

type decodeImageOpts struct {
	source     string
	output     string
	print      bool
	decompress bool
}

func decodeImageCommand(root *rootOpts) *cobra.Command {
	opts := decodeImageOpts{}

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "rgbsteg image decode --source encoded-image.png --print",
		Short:   "Decode data from an image encoded by rgbsteg",
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodeImage(cmd.OutOrStdout(), cmd.ErrOrStderr(), root.logger(cmd), opts)
		},
	}

	decodeCommand.Flags().StringVar(&opts.source, "source", "", "Image generated by rgbsteg to decode")
	decodeCommand.Flags().StringVar(&opts.output, "output", "", "File to write the decoded payload to")
	decodeCommand.Flags().BoolVar(&opts.print, "print", false, "Print the decoded payload as text")
	decodeCommand.Flags().BoolVar(&opts.decompress, "decompress", false, "Decompress the payload after decoding it, for images encoded with --compress")

	MarkFlagsRequired(decodeCommand, "source")
	decodeCommand.MarkFlagsOneRequired("output", "print")

	return decodeCommand
}

func DecodeImage(out, progress io.Writer, logger *logging.Logger, opts decodeImageOpts) error {
	s := NewSpinner(progress)
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, _, err := imageio.ReadImageFile(opts.source)
	if err != nil {
		return err
	}

	s.Prefix = "Decoding data "
	decoder := rgbstegImage.NewImageDecoder(srcImage, config.ImageDecodeConfig{DecompressPayload: opts.decompress})
	result, err := decoder.Decode()
	if err != nil {
		return err
	}

	if opts.output != "" {
		s.Prefix = "Writing decoded data to disk "
		if err = payload.ToFile(model.OutputFile{Name: opts.output, Content: result.Data}); err != nil {
			return err
		}
	}
	s.Stop()

	logger.WithStats(decoder.Stats()).Info("Decoded data from image", "options", result.Header.Options.String(),
		"data_length", result.Header.DataLength)

	if opts.print {
		fmt.Fprintln(out, string(result.Data))
	}
	if opts.output != "" {
		fmt.Fprintf(out, "Decoded %s into %s\n", humanize.Bytes(uint64(len(result.Data))), opts.output)
	}
	return nil
}

func capacityImageCommand() *cobra.Command {
	var (
		sourceImage string
		channels    channelFlags
	)

	capacityCmd := &cobra.Command{
		Use:     "capacity",
		Example: "rgbsteg image capacity --image source.png --bits 3",
		Short:   "Show how much data fits in an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			options := channels.toOptions(cmd)
			if err := options.Validate(); err != nil {
				return err
			}

			srcImage, _, err := imageio.ReadImageFile(sourceImage)
			if err != nil {
				return err
			}

			width, height := srcImage.Bounds().Dx(), srcImage.Bounds().Dy()
			payloadCapacityBytes := rgbstegImage.PayloadCapacityBits(width, height, options) / 8
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d) holds %s (%d bytes) using %s\n", sourceImage, width, height,
				humanize.Bytes(payloadCapacityBytes), payloadCapacityBytes, options)
			return nil
		},
	}

	capacityCmd.Flags().StringVar(&sourceImage, "image", "", "Image to calculate the capacity of")
	addChannelFlags(capacityCmd, &channels)
	MarkFlagsRequired(capacityCmd, "image")

	return capacityCmd
}

type previewImageOpts struct {
	sourceImage         string
	outputImage         string
	channels            channelFlags
	chunkSizeMultiplier int
	pngCompression      string
}

func previewImageCommand(root *rootOpts) *cobra.Command {
	opts := previewImageOpts{}

	previewCmd := &cobra.Command{
		Use:     "preview",
		Example: "rgbsteg image preview --image source.png --output-file preview.png --bits 4",
		Short:   "Fill every usable bit with noise to preview the distortion of a full encode",
		RunE: func(cmd *cobra.Command, args []string) error {
			compressionLevel, err := mapPngCompression(opts.pngCompression)
			if err != nil {
				return err
			}

			return PreviewImage(cmd.OutOrStdout(), cmd.ErrOrStderr(), root.logger(cmd), opts, config.ImageEncodeConfig{
				Options:             opts.channels.toOptions(cmd),
				ChunkSizeMultiplier: opts.chunkSizeMultiplier,
				PngCompressionLevel: compressionLevel,
			})
		},
	}

	previewCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to preview the encoding on")
	previewCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the preview image that will be generated, must be png, bmp, tiff, or qoi for opaque images")
	addChannelFlags(previewCmd, &opts.channels)
	previewCmd.Flags().IntVar(&opts.chunkSizeMultiplier, "chunk-size-multiplier", config.DefaultChunkSizeMultiplier, "Pixels to be handled by a single goroutine")
	previewCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")

	MarkFlagsRequired(previewCmd, "image", "output-file")

	return previewCmd
}

func PreviewImage(out, progress io.Writer, logger *logging.Logger, opts previewImageOpts, iConfig config.ImageEncodeConfig) error {
	if err := iConfig.Options.Validate(); err != nil {
		return err
	}

	s := NewSpinner(progress)
	s.Prefix = "Reading source image "
	s.Start()
	defer s.Stop()

	srcImage, _, err := imageio.ReadImageFile(opts.sourceImage)
	if err != nil {
		return err
	}

	iEncoder, err := rgbstegImage.NewImageEncoder(srcImage, iConfig)
	if err != nil {
		return err
	}

	s.Prefix = "Filling channels with noise "
	iEncoder.EncodeRandom()

	s.Prefix = "Writing output image "
	if err = imageio.WriteImageFile(opts.outputImage, iEncoder.EncodedImage(), iConfig.PngCompressionLevel); err != nil {
		return err
	}
	s.Stop()

	logger.WithStats(iEncoder.Stats()).Info("Generated preview image")
	fmt.Fprintf(out, "Generated %s previewing %s\n", opts.outputImage, iConfig.Options)
	return nil
}
