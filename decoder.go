package huffzip

import (
	"bytes"
	"fmt"
	"io"
)

// DecoderState reports where a Decoder is in its decode loop.
type DecoderState byte

const (
	// Scanning means the decoder is accumulating bits toward a code.
	Scanning DecoderState = iota

	// Matched means the accumulated bits named a symbol.
	Matched

	// Done means every payload bit was accounted for.
	Done

	// Malformed means no code in the table is a prefix of the remaining
	// bits.
	Malformed
)

var decoderStateNames = [...]string{
	Scanning:  "Scanning",
	Matched:   "Matched",
	Done:      "Done",
	Malformed: "Malformed",
}

// String returns the name of this DecoderState.
func (state DecoderState) String() string {
	if int(state) < len(decoderStateNames) {
		return decoderStateNames[state]
	}
	return fmt.Sprintf("DecoderState(%d)", byte(state))
}

// Decoder implements a decoder for byte-oriented Huffman codes.
type Decoder struct {
	table   map[Code]byte
	codes   CodeTable
	minSize byte
	maxSize byte
	state   DecoderState
}

// Init initializes this Decoder from a stored CodeTable.  It fails with
// ErrMalformedStream if the table is not prefix-free.  An empty table is
// permitted; it can only decode an empty payload.
func (d *Decoder) Init(codes CodeTable) error {
	if err := codes.Validate(); err != nil {
		return err
	}

	symbols := codes.Symbols()
	table := make(map[Code]byte, len(symbols))
	for _, symbol := range symbols {
		table[codes.codes[symbol]] = symbol
	}

	*d = Decoder{
		table:   table,
		codes:   codes,
		minSize: codes.MinSize(),
		maxSize: codes.MaxSize(),
		state:   Scanning,
	}
	return nil
}

// Decode recovers the original bytes from the first bitLength bits of
// packed.
//
// Starting at the front of the payload, the decoder looks for the code in
// the table that is a prefix of the remaining bits, emits its symbol, and
// consumes its bits.  Because the table is prefix-free there is at most one
// such code, so extending a candidate one bit at a time and looking it up
// finds the same code a scan of the whole table would.
//
// If no code matches, or the payload is shorter than bitLength bits, Decode
// fails with ErrMalformedStream and returns no output.
func (d *Decoder) Decode(packed []byte, bitLength uint64) ([]byte, error) {
	d.state = Scanning
	bu, err := NewBitUnpacker(packed, bitLength)
	if err != nil {
		d.state = Malformed
		return nil, err
	}

	// bitLength is at most 8*len(packed) here.
	capacity := bitLength
	if d.minSize != 0 {
		capacity /= uint64(d.minSize)
	}
	out := make([]byte, 0, capacity)

	for bu.Remaining() != 0 {
		offset := bu.Offset()
		var hc Code
		for d.state == Scanning {
			if hc.Size >= d.maxSize {
				return nil, d.noMatch(hc, offset)
			}
			bit, ok := bu.ReadBit()
			if !ok {
				return nil, d.noMatch(hc, offset)
			}
			hc = hc.Append(bit)
			if symbol, found := d.table[hc]; found {
				out = append(out, symbol)
				d.state = Matched
			}
		}
		d.state = Scanning
	}

	d.state = Done
	return out, nil
}

func (d *Decoder) noMatch(hc Code, offset uint64) error {
	d.state = Malformed
	return fmt.Errorf("%w: no code in the table matches the %d bits starting at offset %d", ErrMalformedStream, hc.Size, offset)
}

// State returns the state the last call to Decode finished in.
func (d *Decoder) State() DecoderState {
	return d.state
}

// CodeTable returns the table this Decoder was initialized with.
func (d *Decoder) CodeTable() CodeTable {
	return d.codes
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, d.table[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
