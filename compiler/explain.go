package compiler

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// EXPLAIN DUMP
// ============================================================================
//
// Explain writes the compiled decision trees as YAML so a vocabulary's
// branching can be reviewed without reading generated Go.

type explainDoc struct {
	Order       string        `yaml:"order"`
	Fingerprint string        `yaml:"fingerprint"`
	Atoms       []explainAtom `yaml:"atoms"`
	Trees       []explainTree `yaml:"trees"`
	Stats       explainStats  `yaml:"stats"`
}

type explainAtom struct {
	Ordinal int    `yaml:"ordinal"`
	Text    string `yaml:"text"`
	Ident   string `yaml:"ident"`
}

type explainTree struct {
	Len  int         `yaml:"len"`
	Root explainNode `yaml:"root"`
}

type explainNode struct {
	Key      string        `yaml:"key,omitempty"`
	Offset   int           `yaml:"offset"`
	Literal  string        `yaml:"literal,omitempty"`
	Blocks   []string      `yaml:"blocks,omitempty"`
	Atom     string        `yaml:"atom,omitempty"`
	Children []explainNode `yaml:"children,omitempty"`
}

type explainStats struct {
	Nodes    int `yaml:"nodes"`
	Blocks   int `yaml:"blocks"`
	MaxDepth int `yaml:"max_depth"`
}

// Explain writes p as a YAML document.
func (p *Program) Explain(w io.Writer) error {
	st := p.Stats()
	doc := explainDoc{
		Order:       p.Order.String(),
		Fingerprint: Fingerprint(p.vocab),
		Stats:       explainStats{Nodes: st.Nodes, Blocks: st.Blocks, MaxDepth: st.MaxDepth},
	}
	for _, a := range p.vocab.atoms {
		doc.Atoms = append(doc.Atoms, explainAtom{Ordinal: a.Ordinal, Text: a.Text, Ident: a.Ident})
	}
	for _, t := range p.Trees {
		doc.Trees = append(doc.Trees, explainTree{Len: t.Len, Root: p.explainNode(t.Root, true)})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("compiler: explain: %w", err)
	}
	return enc.Close()
}

func (p *Program) explainNode(n *Node, root bool) explainNode {
	out := explainNode{Offset: n.Offset, Literal: string(n.Literal)}
	if !root {
		out.Key = string(rune(n.Key))
		if n.Key < 0x20 || n.Key > 0x7e {
			out.Key = fmt.Sprintf("0x%02x", n.Key)
		}
	}
	for _, b := range n.Blocks {
		out.Blocks = append(out.Blocks, p.DescribeBlock(b))
	}
	if n.Leaf() {
		out.Atom = p.vocab.atoms[n.Ordinal].Text
		return out
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, p.explainNode(c, false))
	}
	return out
}

// DescribeBlock renders b as "LE4@1=0x452d4354", or "B@3=0x2d" for a single
// byte.
func (p *Program) DescribeBlock(b Block) string {
	if b.Width == 1 {
		return fmt.Sprintf("B@%d=0x%02x", b.Offset, b.Word)
	}
	return fmt.Sprintf("%s%d@%d=0x%0*x", p.Order.Prefix(), b.Width, b.Offset, b.Width*2, b.Word)
}
