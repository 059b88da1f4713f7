package compiler

import (
	"slices"

	"staticatom/utils"
)

// ============================================================================
// PREFIX TRIE
// ============================================================================
//
// One trie is built per length class. Because every candidate in a class has
// the same length, the trie never needs an end-of-input test: reaching a leaf
// after verifying its literal consumes the input exactly.
//
// Shape:
//   - A group of one candidate is a leaf whose literal is everything the
//     candidate has left (possibly nothing).
//   - A larger group first absorbs the longest prefix its members share into
//     the node literal, so it can be verified with a few word comparisons
//     instead of one branch per byte, then splits on the next byte.

// Candidate is the unconsumed tail of one atom.
type Candidate struct {
	Suffix  []byte
	Ordinal int
}

// Node is one decision point of a length-class trie.
type Node struct {
	// Key is the byte that selected this node in its parent's switch.
	// Meaningless on a root.
	Key byte

	// Offset is the input position Literal is compared at.
	Offset int

	// Literal is the byte run every atom below this node shares at Offset.
	// On a leaf it is the atom's remaining suffix.
	Literal []byte

	// Blocks is Literal lowered to word comparisons. Filled by Compile.
	Blocks []Block

	// Children are ordered by descending subtree size, ties by the lowest
	// declaration ordinal they contain. Empty on a leaf.
	Children []*Node

	// Ordinal is the resolved atom on a leaf and -1 elsewhere.
	Ordinal int

	size int
}

// Leaf reports whether n resolves to a single atom.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// SwitchOffset is the input position this node branches on.
func (n *Node) SwitchOffset() int { return n.Offset + len(n.Literal) }

// Size is the number of atoms under n.
func (n *Node) Size() int { return n.size }

// Walk visits n and its descendants depth first, parents before children.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// BuildTrie builds the trie of a length class whose candidates start at
// input offset. Candidates must be non-empty, of equal length and distinct.
func BuildTrie(offset int, cands []Candidate) (*Node, error) {
	if len(cands) == 0 {
		return nil, buildErr(ErrEmptyVocabulary, "", "empty length class")
	}
	n := len(cands[0].Suffix)
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		if len(c.Suffix) != n {
			return nil, buildErr(ErrBadOption, utils.B2s(c.Suffix), "length class mixes "+utils.Itoa(n)+" and "+utils.Itoa(len(c.Suffix))+" bytes")
		}
		if _, dup := seen[string(c.Suffix)]; dup {
			return nil, buildErr(ErrDuplicateAtom, string(c.Suffix), "")
		}
		seen[string(c.Suffix)] = struct{}{}
	}

	// Declaration order drives every tie-break below
	sorted := slices.Clone(cands)
	slices.SortStableFunc(sorted, func(a, b Candidate) int { return a.Ordinal - b.Ordinal })
	return build(0, offset, sorted), nil
}

func build(key byte, offset int, cands []Candidate) *Node {
	node := &Node{Key: key, Offset: offset, Ordinal: -1, size: len(cands)}

	if len(cands) == 1 {
		node.Literal = cands[0].Suffix
		node.Ordinal = cands[0].Ordinal
		return node
	}

	p := commonPrefix(cands)
	node.Literal = cands[0].Suffix[:p]

	// Partition on the first byte past the shared prefix, groups in order of
	// first appearance (= lowest ordinal, since cands is sorted)
	type group struct {
		key   byte
		cands []Candidate
	}
	var groups []group
	index := make(map[byte]int, 4)
	for _, c := range cands {
		b := c.Suffix[p]
		gi, ok := index[b]
		if !ok {
			gi = len(groups)
			index[b] = gi
			groups = append(groups, group{key: b})
		}
		groups[gi].cands = append(groups[gi].cands, Candidate{Suffix: c.Suffix[p+1:], Ordinal: c.Ordinal})
	}
	slices.SortStableFunc(groups, func(a, b group) int { return len(b.cands) - len(a.cands) })

	node.Children = make([]*Node, len(groups))
	for i, g := range groups {
		node.Children[i] = build(g.key, offset+p+1, g.cands)
	}
	return node
}

// commonPrefix returns how many leading bytes all candidates share. Distinct
// equal-length candidates always differ somewhere, so the result is shorter
// than every suffix.
func commonPrefix(cands []Candidate) int {
	first := cands[0].Suffix
	p := 0
	for p < len(first) {
		b := first[p]
		for _, c := range cands[1:] {
			if c.Suffix[p] != b {
				return p
			}
		}
		p++
	}
	return p
}
