package bits

import (
	"errors"
	"fmt"
)

var (
	ErrAlignment = errors.New("bit count is not a multiple of 8, cannot convert to bytes")
)

// Stream is a source of single bits. Next returns ok == false once the stream is exhausted, and keeps doing so on
// every subsequent call without changing state.
type Stream interface {
	Next() (bit uint8, ok bool)
}

// Bits is a finite, materialized bit sequence with a read cursor. Bits are stored packed, most significant bit first,
// so a stream built from bytes shares their layout.
type Bits struct {
	packed []byte
	length int
	cursor int
}

func NewBits() *Bits {
	return &Bits{}
}

// FromBytes expands each byte into 8 bits, most significant bit first. The input is copied.
func FromBytes(data []byte) *Bits {
	packed := make([]byte, len(data))
	copy(packed, data)
	return &Bits{
		packed: packed,
		length: len(data) * 8,
	}
}

// FromBits wraps a sequence of 0/1 values as is. Any non-zero value is treated as a 1.
func FromBits(bitValues []uint8) *Bits {
	b := &Bits{packed: make([]byte, 0, (len(bitValues)+7)/8)}
	for _, bit := range bitValues {
		b.Append(bit)
	}
	return b
}

func (b *Bits) Len() int {
	return b.length
}

// Remaining returns how many bits are left to read before the stream is exhausted.
func (b *Bits) Remaining() int {
	return b.length - b.cursor
}

func (b *Bits) Next() (uint8, bool) {
	if b.cursor >= b.length {
		return 0, false
	}
	bit := b.At(b.cursor)
	b.cursor++
	return bit, true
}

// At returns the bit at index i without moving the cursor.
func (b *Bits) At(i int) uint8 {
	return (b.packed[i>>3] >> (7 - uint(i&7))) & 1
}

func (b *Bits) Append(bit uint8) {
	if b.length&7 == 0 {
		b.packed = append(b.packed, 0)
	}
	if bit != 0 {
		b.packed[b.length>>3] |= 1 << (7 - uint(b.length&7))
	}
	b.length++
}

// AppendUint appends the lowest width bits of v, most significant first.
func (b *Bits) AppendUint(v uint64, width int) {
	for shift := width - 1; shift >= 0; shift-- {
		b.Append(uint8(v>>uint(shift)) & 1)
	}
}

// ReadUint consumes width bits and assembles them big endian. ok is false if the stream ran out first, in which case
// the returned value holds only the bits that could be read.
func (b *Bits) ReadUint(width int) (v uint64, ok bool) {
	for i := 0; i < width; i++ {
		bit, more := b.Next()
		if !more {
			return v, false
		}
		v = v<<1 | uint64(bit)
	}
	return v, true
}

// ToBytes packs the whole sequence into bytes, most significant bit first, and empties the stream.
func (b *Bits) ToBytes() ([]byte, error) {
	if b.length&7 != 0 {
		return nil, fmt.Errorf("%w: have %d bits", ErrAlignment, b.length)
	}
	out := b.packed[:b.length>>3]
	b.packed = nil
	b.length = 0
	b.cursor = 0
	return out, nil
}
