package image

import (
	"errors"
	"rgbsteg/internal/bits"
	"rgbsteg/pkg/config"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderSizeBits(t *testing.T) {
	testCases := []struct {
		width, height, expected int
	}{
		{1, 1, 16 + 6},      // 32 bits at full options
		{4, 4, 16 + 10},     // 512
		{100, 100, 16 + 19}, // 320000
		{0, 0, 16 + 1},
	}

	for _, tc := range testCases {
		if size := HeaderSizeBits(tc.width, tc.height); size != tc.expected {
			t.Errorf("Expected header for %dx%d to be %d bits, got %d", tc.width, tc.height, tc.expected, size)
		}
	}
}

func TestBuildHeaderBitsLayout(t *testing.T) {
	header := Header{Options: config.Uniform(2, 0), DataLength: 16}
	headerBits, err := BuildHeaderBits(header, 4, 4)
	if err != nil {
		t.Fatalf("Error building header: %s", err)
	}

	expected := []uint8{
		0, 0, 1, 0, // red
		0, 0, 1, 0, // green
		0, 0, 1, 0, // blue
		0, 0, 0, 0, // alpha
		0, 0, 0, 0, 0, 1, 0, 0, 0, 0, // data length, 10 bits for a 4x4 image
	}

	var got []uint8
	for bit, ok := headerBits.Next(); ok; bit, ok = headerBits.Next() {
		got = append(got, bit)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Unexpected header layout (-want +got):\n%s", diff)
	}
}

func TestBuildParseHeader(t *testing.T) {
	for _, options := range allTestOptions() {
		for _, dataLength := range []uint64{0, 8, 12345, MaxRawCapacityBits(100, 100, config.FullOptions())} {
			header := Header{Options: options, DataLength: dataLength}
			headerBits, err := BuildHeaderBits(header, 100, 100)
			if err != nil {
				t.Fatalf("Error building header %+v: %s", header, err)
			}
			if headerBits.Len() != HeaderSizeBits(100, 100) {
				t.Fatalf("Header has %d bits, expected %d", headerBits.Len(), HeaderSizeBits(100, 100))
			}

			parsed, err := ParseHeaderBits(headerBits)
			if err != nil {
				t.Fatalf("Error parsing header %+v: %s", header, err)
			}
			if diff := cmp.Diff(header, parsed); diff != "" {
				t.Errorf("Parsed header differs (-want +got):\n%s", diff)
			}
		}
	}
}

func TestBuildHeaderBitsFieldOverflow(t *testing.T) {
	testCases := []Header{
		{Options: config.ChannelOptions{BitsRed: 16}},
		{Options: config.ChannelOptions{BitsAlpha: 200}},
		{Options: config.HeaderOptions(), DataLength: 1024}, // 4x4 length field is 10 bits wide
	}

	for _, header := range testCases {
		if _, err := BuildHeaderBits(header, 4, 4); !errors.Is(err, ErrFieldOverflow) {
			t.Errorf("Expected ErrFieldOverflow for %+v, got %v", header, err)
		}
	}

	// 9-15 fit the field, validity is a separate concern
	if _, err := BuildHeaderBits(Header{Options: config.ChannelOptions{BitsRed: 15}, DataLength: 1023}, 4, 4); err != nil {
		t.Errorf("Expected values at the field limits to be accepted, got %s", err)
	}
}

func TestParseHeaderBitsTooShort(t *testing.T) {
	if _, err := ParseHeaderBits(bits.FromBits(make([]uint8, 16))); !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("Expected ErrInvalidHeader for a header without length field, got %v", err)
	}
}

func TestHeaderIsValid(t *testing.T) {
	testCases := []struct {
		header Header
		valid  bool
	}{
		{Header{Options: config.HeaderOptions()}, true},
		{Header{Options: config.FullOptions(), DataLength: 1 << 20}, true},
		{Header{Options: config.ChannelOptions{BitsAlpha: 1}}, true},
		{Header{}, false},
		{Header{Options: config.ChannelOptions{BitsRed: 9}}, false},
		{Header{Options: config.ChannelOptions{BitsRed: 1, BitsBlue: 15}}, false},
	}

	for _, tc := range testCases {
		if valid := tc.header.IsValid(); valid != tc.valid {
			t.Errorf("Expected validity of %+v to be %v", tc.header, tc.valid)
		}
	}
}
