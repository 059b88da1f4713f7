package compiler

import (
	"staticatom/expect"
)

// ============================================================================
// LOWERED PROGRAM
// ============================================================================
//
// Compile turns a vocabulary into one trie per length class and lowers every
// node literal into word comparisons. The emitter prints the result as Go;
// Match executes it directly, which is how the tests check that the printed
// recognizer and the vocabulary agree without compiling generated code.

// Block is one word comparison: Width bytes of input at Offset must pack to
// Word in the program's byte order.
type Block struct {
	Offset int
	Width  int
	Word   uint64
}

// Lower splits lit, which sits at input offset, into Plan-sized blocks.
func Lower(order expect.Order, offset int, lit []byte) []Block {
	if len(lit) == 0 {
		return nil
	}
	blocks := make([]Block, 0, len(lit)/8+3)
	off := 0
	for _, w := range expect.Plan(len(lit)) {
		blocks = append(blocks, Block{
			Offset: offset + off,
			Width:  w,
			Word:   order.Word(lit[off : off+w]),
		})
		off += w
	}
	return blocks
}

// Tree is the trie of one length class.
type Tree struct {
	Len  int
	Root *Node
}

// Program is a compiled vocabulary: one tree per length class, ascending.
type Program struct {
	Order expect.Order
	Trees []Tree

	vocab *Vocabulary
}

// Compile builds and lowers the tries of every length class in v.
func Compile(v *Vocabulary, order expect.Order) (*Program, error) {
	if v == nil || v.Len() == 0 {
		return nil, buildErr(ErrEmptyVocabulary, "", "")
	}
	p := &Program{Order: order, vocab: v}
	for _, class := range v.Classes() {
		cands := make([]Candidate, len(class.Atoms))
		for i, a := range class.Atoms {
			cands[i] = Candidate{Suffix: []byte(a.Text), Ordinal: a.Ordinal}
		}
		root, err := BuildTrie(0, cands)
		if err != nil {
			return nil, err
		}
		root.Walk(func(n *Node, _ int) {
			n.Blocks = Lower(order, n.Offset, n.Literal)
		})
		p.Trees = append(p.Trees, Tree{Len: class.Len, Root: root})
	}
	return p, nil
}

// Match runs the lowered program against s the same way the generated
// recognizer does and returns the matched ordinal.
func (p *Program) Match(s []byte) (int, bool) {
	for i := range p.Trees {
		if p.Trees[i].Len == len(s) {
			return p.matchNode(p.Trees[i].Root, s)
		}
	}
	return -1, false
}

func (p *Program) matchNode(n *Node, s []byte) (int, bool) {
	for {
		for _, b := range n.Blocks {
			if !p.Order.Block(s[b.Offset:], b.Width, b.Word) {
				return -1, false
			}
		}
		if n.Leaf() {
			return n.Ordinal, true
		}
		key := s[n.SwitchOffset()]
		var next *Node
		for _, c := range n.Children {
			if c.Key == key {
				next = c
				break
			}
		}
		if next == nil {
			return -1, false
		}
		n = next
	}
}

// Stats summarizes the shape of a program.
type Stats struct {
	Classes  int
	Nodes    int
	Blocks   int
	MaxDepth int
}

// Stats walks every tree once.
func (p *Program) Stats() Stats {
	st := Stats{Classes: len(p.Trees)}
	for _, t := range p.Trees {
		t.Root.Walk(func(n *Node, depth int) {
			st.Nodes++
			st.Blocks += len(n.Blocks)
			if depth > st.MaxDepth {
				st.MaxDepth = depth
			}
		})
	}
	return st
}
