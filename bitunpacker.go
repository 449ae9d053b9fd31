package huffzip

import (
	"fmt"
)

// BitUnpacker reverses BitPacker.  It expands packed bytes most significant
// bit first and exposes exactly the first L bits; the padding bits that
// complete the final byte are never returned.
type BitUnpacker struct {
	packed []byte
	length uint64
	offset uint64
}

// NewBitUnpacker returns a BitUnpacker over the first length bits of packed.
// It fails with ErrMalformedStream if packed is shorter than length bits.
// Bytes past the last one needed are ignored.
func NewBitUnpacker(packed []byte, length uint64) (*BitUnpacker, error) {
	need := packedLen(length)
	if uint64(len(packed)) < need {
		return nil, fmt.Errorf("%w: payload is truncated: have %d bytes, need %d for %d bits", ErrMalformedStream, len(packed), need, length)
	}
	return &BitUnpacker{packed: packed[:need], length: length}, nil
}

// ReadBit returns the next payload bit, or false once all of them have been
// consumed.
func (bu *BitUnpacker) ReadBit() (uint, bool) {
	if bu.offset >= bu.length {
		return 0, false
	}
	b := bu.packed[bu.offset>>3]
	bit := uint(b>>(7-bu.offset&7)) & 1
	bu.offset++
	return bit, true
}

// Offset returns the number of payload bits consumed so far.
func (bu *BitUnpacker) Offset() uint64 {
	return bu.offset
}

// Remaining returns the number of payload bits not yet consumed.
func (bu *BitUnpacker) Remaining() uint64 {
	return bu.length - bu.offset
}

// Padding returns the number of padding bits in the final packed byte.
func (bu *BitUnpacker) Padding() uint {
	return paddingLen(bu.length)
}
