package huffzip

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder implements an encoder for byte-oriented Huffman codes.
type Encoder struct {
	codes   CodeTable
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the frequency (i.e. number of
// occurrences) of each byte value in the input.  It returns ErrEmptyInput if
// every frequency is zero.
func (e *Encoder) Init(ft FrequencyTable) error {
	t, err := BuildTree(ft)
	if err != nil {
		return err
	}

	codes := AssignCodes(t)
	*e = Encoder{
		codes:   codes,
		minSize: codes.MinSize(),
		maxSize: codes.MaxSize(),
	}
	return nil
}

// Encode returns the Code for a symbol.  Symbols which did not occur in the
// input have a zero-length Code.
func (e *Encoder) Encode(symbol byte) Code {
	return e.codes.codes[symbol]
}

// CodeTable returns the table of all assigned Codes.
func (e *Encoder) CodeTable() CodeTable {
	return e.codes
}

// MinSize is the bit length of the shortest assigned code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// EncodeBytes concatenates the Code of each byte of data, in order, and packs
// the result.  It returns the packed bytes and the number of payload bits,
// which excludes the padding in the last byte.
func (e *Encoder) EncodeBytes(data []byte) ([]byte, uint64, error) {
	var buf bytes.Buffer
	bp := NewBitPacker(&buf)
	for offset, symbol := range data {
		hc := e.codes.codes[symbol]
		if hc.Size == 0 {
			return nil, 0, fmt.Errorf("huffzip: byte %d at offset %d has no code", symbol, offset)
		}
		if err := bp.WriteCode(hc); err != nil {
			return nil, 0, err
		}
	}
	if err := bp.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), bp.Len(), nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	dumpCodes(&buf, &e.codes, "Encode")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
