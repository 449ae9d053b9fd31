package huffzip

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps byte values to their Codes.  Only symbols that occur in the
// input have an entry; a zero-length Code marks an absent symbol.
type CodeTable struct {
	codes [NumSymbols]Code
}

// AssignCodes walks the tree and assigns each leaf the Code spelled by the
// path from the root: "0" for every left branch and "1" for every right
// branch.  The tree is not modified.
//
// A degenerate tree has no branches to spell a code with, so its lone symbol
// is assigned the one-bit Code "0".
func AssignCodes(t *Tree) CodeTable {
	var table CodeTable
	if t.IsDegenerate() {
		table.codes[t.Node(t.Root()).Symbol] = MakeCode(1, 0)
		return table
	}

	var walk func(index NodeIndex, prefix Code)
	walk = func(index NodeIndex, prefix Code) {
		node := t.nodes[index]
		switch node.Kind {
		case LeafNode:
			table.codes[node.Symbol] = prefix
		case InternalNode:
			walk(node.Left, prefix.Append(0))
			walk(node.Right, prefix.Append(1))
		}
	}
	walk(t.Root(), Code{})
	return table
}

// Lookup returns the Code for a symbol, if it has one.
func (table *CodeTable) Lookup(symbol byte) (Code, bool) {
	hc := table.codes[symbol]
	return hc, hc.Size != 0
}

// Set assigns a non-empty Code to a symbol.
func (table *CodeTable) Set(symbol byte, hc Code) {
	assert.Assertf(hc.Size != 0, "empty code for symbol %d", symbol)
	table.codes[symbol] = hc
}

// Len returns the number of symbols with a Code.
func (table *CodeTable) Len() int {
	var n int
	for _, hc := range table.codes {
		if hc.Size != 0 {
			n++
		}
	}
	return n
}

// Symbols returns the symbols with a Code, in ascending order.
func (table *CodeTable) Symbols() []byte {
	out := make([]byte, 0, NumSymbols)
	for symbol, hc := range table.codes {
		if hc.Size != 0 {
			out = append(out, byte(symbol))
		}
	}
	return out
}

// MinSize is the bit length of the shortest Code, or 0 if the table is
// empty.
func (table *CodeTable) MinSize() byte {
	var minSize byte
	for _, hc := range table.codes {
		if hc.Size != 0 && (minSize == 0 || hc.Size < minSize) {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest Code, or 0 if the table is empty.
func (table *CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range table.codes {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// EncodedLength returns the number of payload bits needed to encode an input
// with the given frequencies: the sum of weight × code length.
func (table *CodeTable) EncodedLength(ft FrequencyTable) uint64 {
	var sum uint64
	for symbol, count := range ft {
		size := uint64(table.codes[symbol].Size)
		if count == 0 || size == 0 {
			continue
		}
		bits := count * size
		assert.Assertf(bits/size == count, "bit length overflow: %d × %d", count, size)
		next := sum + bits
		assert.Assertf(next >= sum, "bit length overflow: %d + %d", sum, bits)
		sum = next
	}
	return sum
}

// Validate checks that the table is prefix-free.  A table that fails this
// check cannot be decoded unambiguously, so the error wraps
// ErrMalformedStream.
func (table *CodeTable) Validate() error {
	symbols := table.Symbols()
	for i, a := range symbols {
		for _, b := range symbols[i+1:] {
			ca, cb := table.codes[a], table.codes[b]
			if ca.HasPrefix(cb) {
				return fmt.Errorf("%w: code %s for symbol %d has code %s for symbol %d as a prefix", ErrMalformedStream, ca, a, cb, b)
			}
			if cb.HasPrefix(ca) {
				return fmt.Errorf("%w: code %s for symbol %d has code %s for symbol %d as a prefix", ErrMalformedStream, cb, b, ca, a)
			}
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", table.Len())
	dumpCodes(&buf, table, "Lookup")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the table as an object keyed by decimal symbol value,
// e.g. {"97":"10","98":"11","99":"0"}.
func (table CodeTable) MarshalJSON() ([]byte, error) {
	m := make(map[uint8]Code, NumSymbols)
	for symbol, hc := range table.codes {
		if hc.Size != 0 {
			m[uint8(symbol)] = hc
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON parses the output of MarshalJSON.
func (table *CodeTable) UnmarshalJSON(raw []byte) error {
	var m map[uint8]Code
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	var tmp CodeTable
	for symbol, hc := range m {
		if hc.Size == 0 {
			return fmt.Errorf("huffzip: empty code for symbol %d", symbol)
		}
		tmp.codes[symbol] = hc
	}
	*table = tmp
	return nil
}

func dumpCodes(buf *bytes.Buffer, table *CodeTable, verb string) {
	fmt.Fprintf(buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(buf, "\tMaxSize() = %d\n", table.MaxSize())
	for symbol, hc := range table.codes {
		if hc.Size != 0 {
			fmt.Fprintf(buf, "\t%s(%d) = %s\n", verb, symbol, hc)
		}
	}
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.digits() < b.digits()
}

var _ sort.Interface = byCode(nil)

// }}}
