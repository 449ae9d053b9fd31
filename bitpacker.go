package huffzip

import (
	"io"
)

// BitPacker packs a sequence of bits into bytes, most significant bit first.
//
// The final byte is padded with zero bits when Close is called, so the
// logical bit length reported by Len must be stored alongside the packed
// bytes for the padding to be recognizable on decode.
type BitPacker struct {
	w   io.ByteWriter
	acc byte
	pos uint
	n   uint64
	err error
}

// NewBitPacker returns a BitPacker that emits packed bytes to w.
func NewBitPacker(w io.ByteWriter) *BitPacker {
	return &BitPacker{w: w}
}

// WriteBit appends one bit.  Any non-zero value is a 1 bit.
func (bp *BitPacker) WriteBit(bit uint) error {
	if bp.err != nil {
		return bp.err
	}
	bp.acc <<= 1
	if bit != 0 {
		bp.acc |= 1
	}
	bp.pos++
	bp.n++
	if bp.pos == 8 {
		bp.emit()
	}
	return bp.err
}

// WriteCode appends every bit of a Code, first bit first.
func (bp *BitPacker) WriteCode(hc Code) error {
	for i := 0; i < int(hc.Size); i++ {
		if err := bp.WriteBit(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of bits written so far, excluding padding.
func (bp *BitPacker) Len() uint64 {
	return bp.n
}

// Close left-aligns and emits any partial final byte.  It does not close the
// underlying writer.
func (bp *BitPacker) Close() error {
	if bp.err == nil && bp.pos > 0 {
		bp.acc <<= 8 - bp.pos
		bp.emit()
	}
	return bp.err
}

func (bp *BitPacker) emit() {
	bp.err = bp.w.WriteByte(bp.acc)
	bp.acc = 0
	bp.pos = 0
}
