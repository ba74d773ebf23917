package payload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"rgbsteg/pkg/model"
	"sync"

	"github.com/klauspost/compress/zstd"
)

const (
	// MaxPayloadSize bounds how much is read or decompressed into memory at once
	MaxPayloadSize = 1000 * 1000 * 1000
)

var (
	ErrPayloadTooLarge = errors.New("payload is larger than the maximum supported size")
)

var zstdEncPool = sync.Pool{
	New: func() any {
		return mustNewZstdEncoder()
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		return mustNewZstdDecoder()
	},
}

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxPayloadSize),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

func FromText(text string) []byte {
	return []byte(text)
}

// FromFile opens the file at path for reading. The caller closes Content when it implements io.Closer.
func FromFile(path string) (model.InputFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.InputFile{}, err
	}

	fileStat, err := file.Stat()
	if err != nil {
		file.Close()
		return model.InputFile{}, err
	}

	return model.InputFile{
		Name:    filepath.Base(file.Name()),
		Content: file,
		Size:    fileStat.Size(),
	}, nil
}

// ToFile writes a decoded payload to output.Name, creating missing parent directories.
func ToFile(output model.OutputFile) error {
	if dir := filepath.Dir(output.Name); dir != "." {
		if err := os.MkdirAll(dir, 0775); err != nil {
			return err
		}
	}
	return os.WriteFile(output.Name, output.Content, 0664)
}

// Read loads the whole input into memory, refusing anything over limit bytes.
func Read(input model.InputFile, limit int64) ([]byte, error) {
	if input.Size > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrPayloadTooLarge, input.Name, input.Size, limit)
	}

	data, err := io.ReadAll(io.LimitReader(input.Content, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrPayloadTooLarge, input.Name, limit)
	}
	return data, nil
}

func Compress(data []byte) []byte {
	enc := zstdEncPool.Get().(*zstd.Encoder)
	defer zstdEncPool.Put(enc)
	return enc.EncodeAll(data, make([]byte, 0, len(data)/2))
}

func Decompress(data []byte) ([]byte, error) {
	dec := zstdDecPool.Get().(*zstd.Decoder)
	defer zstdDecPool.Put(dec)
	decompressed, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}
	return decompressed, nil
}
