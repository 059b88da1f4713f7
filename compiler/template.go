package compiler

import "text/template"

// atomsTemplate renders one generated atom package. Its output is passed
// through go/format, so indentation and alignment here do not matter.
var atomsTemplate = template.Must(template.New("atoms").Parse(`// Code generated by staticatom{{if .Source}} from {{.Source}}{{end}}; DO NOT EDIT.

package {{.Package}}

import (
	"iter"

	{{printf "%q" .RuntimeImport}}
{{- if .UsesExpect}}
	{{printf "%q" .ExpectImport}}
{{- end}}
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)

// {{.Type}} is an atom of a closed vocabulary of {{.Count}}. Its value is the
// atom's ordinal.
type {{.Type}} {{.Underlying}}

const (
{{- range .Atoms}}
	{{.Ident}} {{$.Type}} = {{.Ordinal}} // {{.Quoted}}
{{- end}}
)

const (
	// {{.Type}}Count is the number of atoms.
	{{.Type}}Count = {{.Count}}

	// {{.Type}}Fingerprint identifies the vocabulary by content and order.
	{{.Type}}Fingerprint = {{printf "%q" .Fingerprint}}
)

var {{.Lower}}Text = [{{.Type}}Count]string{
{{- range .Atoms}}
	{{.Quoted}},
{{- end}}
}

// String returns the atom text.
func (a {{.Type}}) String() string {
	if int(a) < {{.Type}}Count {
		return {{.Lower}}Text[a]
	}
	return atom.Invalid({{printf "%q" .Type}}, int(a))
}

// Ordinal returns the dense index of a in [0, {{.Type}}Count).
func (a {{.Type}}) Ordinal() int { return int(a) }

// {{.Type}}FromOrdinal returns the atom with ordinal n.
func {{.Type}}FromOrdinal(n int) ({{.Type}}, error) {
	if err := atom.CheckOrdinal({{printf "%q" .Type}}, n, {{.Type}}Count); err != nil {
		return 0, err
	}
	return {{.Type}}(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (a {{.Type}}) MarshalText() ([]byte, error) {
	if err := atom.CheckOrdinal({{printf "%q" .Type}}, int(a), {{.Type}}Count); err != nil {
		return nil, err
	}
	return []byte({{.Lower}}Text[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *{{.Type}}) UnmarshalText(b []byte) error {
	v, err := Parse{{.Type}}(b)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ============================================================================
// RECOGNIZER
// ============================================================================

// Parse{{.Type}} recognizes b as exactly one atom. Anything else, including
// prefixes and extensions of an atom, fails with atom.ErrNoMatch.
func Parse{{.Type}}(b []byte) ({{.Type}}, error) {
	switch len(b) {
{{- range .Classes}}
	case {{.Len}}:
		return {{.Func}}(b)
{{- end}}
	}
	return 0, atom.ErrNoMatch
}

// Parse{{.Type}}String is Parse{{.Type}} over a string, without copying it.
func Parse{{.Type}}String(s string) ({{.Type}}, error) {
	return Parse{{.Type}}(atom.Bytes(s))
}

{{.Parsers}}

// ============================================================================
// MARKERS
// ============================================================================

// {{.Type}}Marker is implemented only by the marker types below.
type {{.Type}}Marker interface {
	Atom() {{.Type}}
	{{.Lower}}Marker()
}

// {{.Type}}Markers is the closed set of marker types.
type {{.Type}}Markers interface {
	{{range $i, $a := .Atoms}}{{if $i}} | {{end}}{{$a.Ident}}Marker{{end}}
	{{.Type}}Marker
}
{{range .Atoms}}
// {{.Ident}}Marker stands for {{.Ident}} at the type level.
type {{.Ident}}Marker struct{}

func ({{.Ident}}Marker) Atom() {{$.Type}} { return {{.Ident}} }
func ({{.Ident}}Marker) {{$.Lower}}Marker() {}
{{end}}
var {{.Lower}}Markers = [{{.Type}}Count]{{.Type}}Marker{
{{- range .Atoms}}
	{{.Ident}}Marker{},
{{- end}}
}

// Marker returns the marker of a, or nil if a is not an atom.
func (a {{.Type}}) Marker() {{.Type}}Marker {
	if int(a) < {{.Type}}Count {
		return {{.Lower}}Markers[a]
	}
	return nil
}

// {{.Type}}OrdinalOf returns the ordinal of the atom M stands for.
func {{.Type}}OrdinalOf[M {{.Type}}Markers]() int {
	var m M
	return m.Atom().Ordinal()
}

// ============================================================================
// DENSE MAP
// ============================================================================

// {{.Type}}Map is a map from {{.Type}} to V backed by one inline slot per atom.
// The zero value is empty and ready to use. Keys must be atoms.
type {{.Type}}Map[V any] struct {
	slots [{{.Type}}Count]atom.Slot[V]
}

// Collect{{.Type}}Map builds a map from seq; later pairs win.
func Collect{{.Type}}Map[V any](seq iter.Seq2[{{.Type}}, V]) *{{.Type}}Map[V] {
	m := new({{.Type}}Map[V])
	m.table().Fill(seq)
	return m
}

func (m *{{.Type}}Map[V]) table() atom.Table[{{.Type}}, V] { return m.slots[:] }

// Get returns the value stored for k.
func (m *{{.Type}}Map[V]) Get(k {{.Type}}) (V, bool) { return m.table().Get(k) }

// Ptr returns a pointer to the value stored for k, or nil.
func (m *{{.Type}}Map[V]) Ptr(k {{.Type}}) *V { return m.table().Ptr(k) }

// Contains reports whether k has a value.
func (m *{{.Type}}Map[V]) Contains(k {{.Type}}) bool { return m.table().Contains(k) }

// Insert stores v for k and returns the previous value, if any.
func (m *{{.Type}}Map[V]) Insert(k {{.Type}}, v V) (V, bool) { return m.table().Insert(k, v) }

// Remove deletes k and returns the value it held, if any.
func (m *{{.Type}}Map[V]) Remove(k {{.Type}}) (V, bool) { return m.table().Remove(k) }

// GetOrInsert stores v for k unless present and returns the stored value.
func (m *{{.Type}}Map[V]) GetOrInsert(k {{.Type}}, v V) *V { return m.table().GetOrInsert(k, v) }

// GetOrInsertWith is GetOrInsert with a lazily computed value.
func (m *{{.Type}}Map[V]) GetOrInsertWith(k {{.Type}}, f func() V) *V {
	return m.table().GetOrInsertWith(k, f)
}

// Len counts stored values.
func (m *{{.Type}}Map[V]) Len() int { return m.table().Len() }

// Clear removes every value.
func (m *{{.Type}}Map[V]) Clear() { m.table().Clear() }

// All yields every (atom, value) pair in ordinal order.
func (m *{{.Type}}Map[V]) All() iter.Seq2[{{.Type}}, V] { return m.table().All() }

// AllPtr is All with pointers to the stored values.
func (m *{{.Type}}Map[V]) AllPtr() iter.Seq2[{{.Type}}, *V] { return m.table().AllPtr() }

// Keys yields every atom with a value, in ordinal order.
func (m *{{.Type}}Map[V]) Keys() iter.Seq[{{.Type}}] { return m.table().Keys() }

// Values yields every stored value in ordinal order of its atom.
func (m *{{.Type}}Map[V]) Values() iter.Seq[V] { return m.table().Values() }
{{range .Mappings}}
// ============================================================================
// {{.Banner}}
// ============================================================================

// {{.Name}} holds at most one value per atom; each atom has its own value type.
type {{.Name}} struct {
{{- range .Fields}}
	{{.Field}} atom.Slot[{{.Type}}]
{{- end}}
}
{{range .Fields}}
// {{.Ident}} returns the slot of {{.Ident}}.
func (m *{{.Owner}}) {{.Ident}}() *atom.Slot[{{.Type}}] { return &m.{{.Field}} }
{{end}}
// Has reports whether k has a value.
func (m *{{.Name}}) Has(k {{$.Type}}) bool {
	switch k {
{{- range .Fields}}
	case {{.Ident}}:
		return m.{{.Field}}.IsSet()
{{- end}}
	}
	return false
}

// Len counts stored values.
func (m *{{.Name}}) Len() int {
	n := 0
{{- range .Fields}}
	if m.{{.Field}}.IsSet() {
		n++
	}
{{- end}}
	return n
}

// Clear removes every value.
func (m *{{.Name}}) Clear() { *m = {{.Name}}{} }
{{if .Generic}}
// {{.Name}}Of returns the slot of the atom M stands for.
func {{.Name}}Of[M {{$.Type}}Markers](m *{{.Name}}) *atom.Slot[{{.Of}}[M]] {
	var k M
	switch any(k).(type) {
{{- range .Fields}}
	case {{.Ident}}Marker:
		return any(&m.{{.Field}}).(*atom.Slot[{{.Of}}[M]])
{{- end}}
	}
	return nil
}
{{end}}
{{- end}}
`))
