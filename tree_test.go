package huffzip

import (
	"errors"
	"strings"
	"testing"
)

func makeTestFrequencies() FrequencyTable {
	var ft FrequencyTable
	copy(ft[:], []uint64{5, 9, 12, 13, 16, 45})
	return ft
}

func TestBuildTree_Dump(t *testing.T) {
	tree, err := BuildTree(makeTestFrequencies())
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 10\n",
		"\tNode(0) = Leaf{symbol: 0, weight: 5}\n",
		"\tNode(1) = Leaf{symbol: 1, weight: 9}\n",
		"\tNode(2) = Leaf{symbol: 2, weight: 12}\n",
		"\tNode(3) = Leaf{symbol: 3, weight: 13}\n",
		"\tNode(4) = Leaf{symbol: 4, weight: 16}\n",
		"\tNode(5) = Leaf{symbol: 5, weight: 45}\n",
		"\tNode(6) = Internal{weight: 14, left: 0, right: 1}\n",
		"\tNode(7) = Internal{weight: 25, left: 2, right: 3}\n",
		"\tNode(8) = Internal{weight: 30, left: 6, right: 4}\n",
		"\tNode(9) = Internal{weight: 55, left: 7, right: 8}\n",
		"\tNode(10) = Internal{weight: 100, left: 5, right: 9}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree, err := BuildTree(FrequencyTable{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if tree != nil {
		t.Errorf("expected nil tree, got %d nodes", tree.Len())
	}
}

func TestBuildTree_Degenerate(t *testing.T) {
	tree, err := BuildTree(CountFrequencies([]byte("aaaa")))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !tree.IsDegenerate() {
		t.Errorf("expected a degenerate tree")
	}
	if tree.Len() != 1 {
		t.Errorf("expected 1 node, got %d", tree.Len())
	}
	root := tree.Node(tree.Root())
	if root.Kind != LeafNode || root.Symbol != 'a' || root.Weight != 4 {
		t.Errorf("wrong root: %+v", root)
	}
}

func TestBuildTree_WeightConservation(t *testing.T) {
	for _, input := range testInputs() {
		ft := CountFrequencies(input)
		tree, err := BuildTree(ft)
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		if expect, actual := uint64(len(input)), tree.Weight(); expect != actual {
			t.Errorf("root weight: expected %d, got %d", expect, actual)
		}
		if expect, actual := 2*ft.Distinct()-1, tree.Len(); expect != actual {
			t.Errorf("node count: expected %d, got %d", expect, actual)
		}
		for index := 0; index < tree.Len(); index++ {
			node := tree.Node(NodeIndex(index))
			if node.Kind != InternalNode {
				if node.Weight != ft[node.Symbol] {
					t.Errorf("leaf %d: expected weight %d, got %d", node.Symbol, ft[node.Symbol], node.Weight)
				}
				continue
			}
			left, right := tree.Node(node.Left), tree.Node(node.Right)
			if node.Weight != left.Weight+right.Weight {
				t.Errorf("node %d: weight %d != %d + %d", index, node.Weight, left.Weight, right.Weight)
			}
			if node.Left >= NodeIndex(index) || node.Right >= NodeIndex(index) {
				t.Errorf("node %d: children %d, %d are not older than their parent", index, node.Left, node.Right)
			}
		}
	}
}

func TestNodeKind_String(t *testing.T) {
	if s := LeafNode.String(); s != "Leaf" {
		t.Errorf("expected Leaf, got %s", s)
	}
	if s := InternalNode.String(); s != "Internal" {
		t.Errorf("expected Internal, got %s", s)
	}
	if s := NodeKind(7).String(); s != "NodeKind(7)" {
		t.Errorf("expected NodeKind(7), got %s", s)
	}
}
