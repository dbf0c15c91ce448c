package bitset

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"

	"github.com/outofforest/dats/types"
)

const bitsPerByte = 8

// New creates bitset of size bits, all of them unset.
func New(size uint64) (*Bitset, error) {
	if size == 0 {
		return nil, errors.Wrap(types.ErrInvalidArgument, "bitset size must be greater than 0")
	}
	return &Bitset{
		buffer: make([]byte, bufferSize(size)),
		size:   size,
	}, nil
}

// Bitset is the fixed-size set of bits addressed by 1-based position. The most significant bit of the first byte
// is position 1.
type Bitset struct {
	buffer []byte
	size   uint64
}

// Size returns the number of bits.
func (b *Bitset) Size() uint64 {
	return b.size
}

// Set sets or unsets the bit at position.
func (b *Bitset) Set(position uint64, value bool) error {
	byteIndex, mask, err := b.locate(position)
	if err != nil {
		return err
	}
	if value {
		b.buffer[byteIndex] |= mask
	} else {
		b.buffer[byteIndex] &^= mask
	}
	return nil
}

// IsSet checks if the bit at position is set.
func (b *Bitset) IsSet(position uint64) (bool, error) {
	byteIndex, mask, err := b.locate(position)
	if err != nil {
		return false, err
	}
	return b.buffer[byteIndex]&mask != 0, nil
}

// IsSetBitset checks if every bit set in other is set in b too.
func (b *Bitset) IsSetBitset(other *Bitset) bool {
	for i, o := range other.buffer {
		var v byte
		if i < len(b.buffer) {
			v = b.buffer[i]
		}
		if o&^v != 0 {
			return false
		}
	}
	return true
}

// Flip inverts every bit.
func (b *Bitset) Flip() {
	for i := range b.buffer {
		b.buffer[i] = ^b.buffer[i]
	}
	b.clearPadding()
}

// Count returns the number of set bits.
func (b *Bitset) Count() uint64 {
	var count int
	for _, v := range b.buffer {
		count += bits.OnesCount8(v)
	}
	return uint64(count)
}

// Reset unsets all the bits.
func (b *Bitset) Reset() {
	clear(b.buffer)
}

// Free releases the buffer. Size is set to 0 and every position becomes out of range.
func (b *Bitset) Free() {
	b.buffer = nil
	b.size = 0
}

// String returns bits in position order, 1 for set bit and 0 for unset one.
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.Grow(int(b.size))
	for offset := range b.size {
		if b.buffer[offset/bitsPerByte]&(0x80>>(offset%bitsPerByte)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b *Bitset) locate(position uint64) (uint64, byte, error) {
	if position == 0 || position > b.size {
		return 0, 0, errors.Wrapf(types.ErrOutOfRange, "position %d, size %d", position, b.size)
	}
	offset := position - 1
	return offset / bitsPerByte, 0x80 >> (offset % bitsPerByte), nil
}

func (b *Bitset) clearPadding() {
	if padding := uint64(len(b.buffer))*bitsPerByte - b.size; padding > 0 {
		b.buffer[len(b.buffer)-1] &^= 1<<padding - 1
	}
}

func bufferSize(size uint64) uint64 {
	return (size + bitsPerByte - 1) / bitsPerByte
}
