package huffzip

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeKind distinguishes leaves from internal nodes.
type NodeKind byte

const (
	// LeafNode is a node that carries a symbol.
	LeafNode NodeKind = iota

	// InternalNode is a node with exactly two children.
	InternalNode
)

// String returns the name of this NodeKind.
func (kind NodeKind) String() string {
	switch kind {
	case LeafNode:
		return "Leaf"
	case InternalNode:
		return "Internal"
	default:
		return fmt.Sprintf("NodeKind(%d)", byte(kind))
	}
}

// NodeIndex addresses a Node within the Tree that owns it.
type NodeIndex int32

// NoNode is the NodeIndex of a missing child.
const NoNode = NodeIndex(-1)

// Node is one node of a Huffman tree.
//
// Symbol is only meaningful for leaves, and Left and Right are only
// meaningful for internal nodes.  The Weight of an internal node is the sum
// of its children's weights.
type Node struct {
	Kind   NodeKind
	Symbol byte
	Weight uint64
	Left   NodeIndex
	Right  NodeIndex
}

// Tree is a Huffman tree stored as a flat arena of nodes.  Children always
// have lower indices than their parent, and the root has the highest index.
type Tree struct {
	nodes []Node
	root  NodeIndex
}

// BuildTree constructs a Huffman tree from a table of symbol frequencies.  It
// returns ErrEmptyInput if every count is zero.
//
// Every symbol with a non-zero count becomes a leaf.  The two lightest trees
// are repeatedly combined under a new internal node, the first one removed
// becoming the left child, until a single tree remains.  A single distinct
// symbol yields a degenerate tree consisting of one leaf.
//
// Ties in weight are broken by node index, which is creation order: leaves
// in ascending symbol order, then internal nodes in the order they were
// built.  The resulting tree is therefore a pure function of ft.
func BuildTree(ft FrequencyTable) (*Tree, error) {
	t := &Tree{
		nodes: make([]Node, 0, 2*NumSymbols-1),
		root:  NoNode,
	}

	pq := NewPriorityQueue(func(a, b NodeIndex) bool {
		wa, wb := t.nodes[a].Weight, t.nodes[b].Weight
		if wa != wb {
			return wa < wb
		}
		return a < b
	})

	for symbol := 0; symbol < NumSymbols; symbol++ {
		if weight := ft[symbol]; weight != 0 {
			pq.Add(t.push(Node{
				Kind:   LeafNode,
				Symbol: byte(symbol),
				Weight: weight,
				Left:   NoNode,
				Right:  NoNode,
			}))
		}
	}

	if pq.Len() == 0 {
		return nil, ErrEmptyInput
	}

	for pq.Len() > 1 {
		a := mustRemove(pq)
		b := mustRemove(pq)

		wa, wb := t.nodes[a].Weight, t.nodes[b].Weight
		sum := wa + wb
		assert.Assertf(sum >= wa, "weight overflow: %d + %d", wa, wb)

		pq.Add(t.push(Node{
			Kind:   InternalNode,
			Weight: sum,
			Left:   a,
			Right:  b,
		}))
	}

	t.root = mustRemove(pq)
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() NodeIndex {
	return t.root
}

// Node returns the node at the given index.
func (t *Tree) Node(index NodeIndex) Node {
	return t.nodes[index]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Weight returns the weight of the root, which equals the length of the
// input the tree was built from.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].Weight
}

// IsDegenerate returns true iff the tree consists of a single leaf.
func (t *Tree) IsDegenerate() bool {
	return t.nodes[t.root].Kind == LeafNode
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, node := range t.nodes {
		switch node.Kind {
		case LeafNode:
			fmt.Fprintf(&buf, "\tNode(%d) = Leaf{symbol: %d, weight: %d}\n", index, node.Symbol, node.Weight)
		case InternalNode:
			fmt.Fprintf(&buf, "\tNode(%d) = Internal{weight: %d, left: %d, right: %d}\n", index, node.Weight, node.Left, node.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) push(node Node) NodeIndex {
	index := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node)
	return index
}

func mustRemove(pq *PriorityQueue[NodeIndex]) NodeIndex {
	index, err := pq.Remove()
	assert.Assertf(err == nil, "BUG: %v", err)
	return index
}
