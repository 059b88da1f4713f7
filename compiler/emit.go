package compiler

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ============================================================================
// DECISION TREE EMITTER
// ============================================================================
//
// Each length class becomes one function:
//
//	func parsePair7(s []byte) (Pair, error) {
//		switch s[0] {
//		case 'E':
//			if !expect.LE2(s[1:], 0x4854) || s[3] != '-' {
//				break
//			}
//			switch s[4] {
//			...
//			}
//		}
//		return 0, atom.ErrNoMatch
//	}
//
// The caller has already checked len(s), so every comparison sits at a
// constant offset and no leaf re-checks the end of input. A failed literal
// inside a case breaks out of its switch; since nothing follows a switch in
// any case body, control always falls through to the single failure return.
// Indentation is left to go/format.

type emitter struct {
	buf        bytes.Buffer
	prog       *Program
	typ        string
	usesExpect bool
}

// emitParsers renders the per-class parse functions of p for atom type typ.
// It reports whether any comparison wider than one byte was emitted, which
// decides whether the generated file imports expect.
func emitParsers(p *Program, typ string) (string, bool) {
	e := &emitter{prog: p, typ: typ}
	for _, t := range p.Trees {
		e.tree(t)
	}
	return e.buf.String(), e.usesExpect
}

// parserName is the generated function for length class n.
func parserName(typ string, n int) string {
	return "parse" + typ + strconv.Itoa(n)
}

func (e *emitter) tree(t Tree) {
	fmt.Fprintf(&e.buf, "func %s(s []byte) (%s, error) {\n", parserName(e.typ, t.Len), e.typ)
	e.node(t.Root, true)
	e.buf.WriteString("return 0, atom.ErrNoMatch\n}\n\n")
}

func (e *emitter) node(n *Node, root bool) {
	if n.Leaf() {
		ret := "return " + e.prog.vocab.atoms[n.Ordinal].Ident + ", nil\n"
		if len(n.Blocks) == 0 {
			e.buf.WriteString(ret)
			return
		}
		fmt.Fprintf(&e.buf, "if %s {\n%s}\n", e.conj(n.Blocks, false), ret)
		return
	}

	if len(n.Blocks) > 0 {
		fail := "break"
		if root {
			fail = "return 0, atom.ErrNoMatch"
		}
		fmt.Fprintf(&e.buf, "if %s {\n%s\n}\n", e.conj(n.Blocks, true), fail)
	}

	fmt.Fprintf(&e.buf, "switch s[%d] {\n", n.SwitchOffset())
	for _, c := range n.Children {
		fmt.Fprintf(&e.buf, "case %s:\n", byteLit(c.Key))
		e.node(c, false)
	}
	e.buf.WriteString("}\n")
}

// conj joins blocks with && or, negated, with ||.
func (e *emitter) conj(blocks []Block, negate bool) string {
	op := " && "
	if negate {
		op = " || "
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = e.cond(b, negate)
	}
	return strings.Join(parts, op)
}

func (e *emitter) cond(b Block, negate bool) string {
	if b.Width == 1 {
		op := "=="
		if negate {
			op = "!="
		}
		return fmt.Sprintf("s[%d] %s %s", b.Offset, op, byteLit(byte(b.Word)))
	}
	e.usesExpect = true
	not := ""
	if negate {
		not = "!"
	}
	return fmt.Sprintf("%sexpect.%s%d(%s, 0x%0*x)", not, e.prog.Order.Prefix(), b.Width, sliceAt(b.Offset), b.Width*2, b.Word)
}

func sliceAt(off int) string {
	if off == 0 {
		return "s"
	}
	return "s[" + strconv.Itoa(off) + ":]"
}

// byteLit renders printable ASCII as a rune literal and anything else as hex.
func byteLit(c byte) string {
	if c >= 0x20 && c <= 0x7e {
		return strconv.QuoteRune(rune(c))
	}
	return fmt.Sprintf("0x%02x", c)
}
