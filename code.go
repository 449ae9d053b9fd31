package huffzip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the length of the longest representable Code.  A Huffman
// tree over NumSymbols leaves is never deeper than NumSymbols-1.
const MaxCodeSize = NumSymbols - 1

const codeWords = 4

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i lives at position
	// i%64 of Bits[i/64], so the least significant bit of Bits[0] is the
	// first bit.  Bits past Size are always zero, which keeps Code usable
	// as a map key.
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64
// bits.  The bits are given most significant first, so MakeCode(3, 0x6) is
// the Code "110".
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	var hc Code
	for i := byte(0); i < size; i++ {
		hc = hc.Append(uint(bits>>(size-1-i)) & 1)
	}
	return hc
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("huffzip: code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("huffzip: invalid character %q in code %q", str[i], str)
		}
	}
	return hc, nil
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "cannot extend a %d-bit code", hc.Size)
	if bit != 0 {
		hc.Bits[hc.Size>>6] |= uint64(1) << (hc.Size & 63)
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.Bits[i>>6]>>(uint(i)&63)) & 1
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	remaining := uint(prefix.Size)
	for word := 0; remaining != 0; word++ {
		mask := ^uint64(0)
		if remaining < 64 {
			mask = (uint64(1) << remaining) - 1
		}
		if (hc.Bits[word]^prefix.Bits[word])&mask != 0 {
			return false
		}
		if remaining < 64 {
			break
		}
		remaining -= 64
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.digits())
}

// MarshalText renders this Code as a string of '0' and '1' characters.
func (hc Code) MarshalText() ([]byte, error) {
	return []byte(hc.digits()), nil
}

// UnmarshalText parses the output of MarshalText.
func (hc *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*hc = parsed
	return nil
}

func (hc Code) digits() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		buf.WriteByte('0' + byte(hc.Bit(i)))
	}
	return buf.String()
}

var _ fmt.Stringer = Code{}
