package compiler

import (
	"bytes"
	"go/format"
	"go/token"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"staticatom/constants"
	"staticatom/expect"
)

// ============================================================================
// SOURCE GENERATION
// ============================================================================

// Options control the generated package.
type Options struct {
	Package  string
	Type     string
	Order    expect.Order
	Mappings []Mapping

	// Imports are extra import paths the mapping value types need.
	Imports []string

	// Source names the vocabulary's origin in the generated header.
	Source string
}

// Generate compiles v and writes the generated Go source to w. Nothing is
// written unless every check passes and the output formats cleanly.
func Generate(w io.Writer, v *Vocabulary, o Options) error {
	p, err := Compile(v, o.Order)
	if err != nil {
		return err
	}
	return p.Generate(w, o)
}

// Generate writes the Go source for p. o.Order is ignored in favour of the
// order p was compiled with.
func (p *Program) Generate(w io.Writer, o Options) error {
	src, err := p.Source(o)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Source returns the formatted Go source for p.
func (p *Program) Source(o Options) ([]byte, error) {
	data, err := p.templateData(o)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := atomsTemplate.Execute(&buf, data); err != nil {
		return nil, buildErr(ErrBadOption, "", "render: "+err.Error())
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, buildErr(ErrBadOption, "", "generated source does not format: "+err.Error())
	}
	return src, nil
}

type atomData struct {
	Ident   string
	Ordinal int
	Quoted  string
}

type classData struct {
	Len  int
	Func string
}

type fieldData struct {
	Owner string
	Of    string
	Field string
	Ident string
	Type  string
}

type mappingData struct {
	Name    string
	Banner  string
	Of      string
	Generic bool
	Fields  []fieldData
}

type templateData struct {
	Source        string
	Package       string
	Type          string
	Lower         string
	Underlying    string
	Count         int
	Fingerprint   string
	RuntimeImport string
	ExpectImport  string
	UsesExpect    bool
	Imports       []string
	Atoms         []atomData
	Classes       []classData
	Parsers       string
	Mappings      []mappingData
}

func (p *Program) templateData(o Options) (*templateData, error) {
	v := p.vocab
	if !token.IsIdentifier(o.Package) || o.Package == "_" {
		return nil, buildErr(ErrBadOption, "", "package "+strconv.Quote(o.Package)+" is not a valid package name")
	}
	if !token.IsIdentifier(o.Type) || !token.IsExported(o.Type) {
		return nil, buildErr(ErrBadOption, "", "type "+strconv.Quote(o.Type)+" is not an exported identifier")
	}

	d := &templateData{
		Source:        o.Source,
		Package:       o.Package,
		Type:          o.Type,
		Lower:         lowerFirst(o.Type),
		Underlying:    "uint8",
		Count:         v.Len(),
		Fingerprint:   Fingerprint(v),
		RuntimeImport: constants.RuntimeImport,
		ExpectImport:  constants.ExpectImport,
	}
	if v.Len() > constants.SmallAtomCap {
		d.Underlying = "uint16"
	}

	imports, err := cleanImports(o.Imports)
	if err != nil {
		return nil, err
	}
	d.Imports = imports

	for _, a := range v.atoms {
		d.Atoms = append(d.Atoms, atomData{Ident: a.Ident, Ordinal: a.Ordinal, Quoted: strconv.Quote(a.Text)})
	}
	for _, t := range p.Trees {
		d.Classes = append(d.Classes, classData{Len: t.Len, Func: parserName(o.Type, t.Len)})
	}
	d.Parsers, d.UsesExpect = emitParsers(p, o.Type)

	seen := make(map[string]bool, len(o.Mappings))
	for _, m := range o.Mappings {
		r, err := resolveMapping(m, v)
		if err != nil {
			return nil, err
		}
		if seen[r.Name] {
			return nil, buildErr(ErrBadMapping, "", r.Name+": declared twice")
		}
		seen[r.Name] = true

		md := mappingData{Name: r.Name, Banner: "TYPED MAP: " + strings.ToUpper(r.Name), Of: r.Of, Generic: r.Generic}
		for i, a := range v.atoms {
			md.Fields = append(md.Fields, fieldData{
				Owner: r.Name,
				Of:    r.Of,
				Field: "s" + strconv.Itoa(i),
				Ident: a.Ident,
				Type:  r.Types[i],
			})
		}
		d.Mappings = append(d.Mappings, md)
	}

	if err := checkNames(d); err != nil {
		return nil, err
	}
	return d, nil
}

// checkNames rejects any two generated package-level declarations, or two
// methods of one typed map, that would share an identifier.
func checkNames(d *templateData) error {
	owner := make(map[string]string)
	claim := func(name, what string) error {
		if prev, ok := owner[name]; ok {
			return buildErr(ErrIdentCollision, "", name+" names both "+prev+" and "+what)
		}
		owner[name] = what
		return nil
	}

	t := d.Type
	for _, name := range []string{
		t, t + "Count", t + "Fingerprint", t + "FromOrdinal", t + "OrdinalOf",
		t + "Marker", t + "Markers", t + "Map", "Collect" + t + "Map",
		"Parse" + t, "Parse" + t + "String",
	} {
		if err := claim(name, "a generated declaration"); err != nil {
			return err
		}
	}
	for _, a := range d.Atoms {
		if err := claim(a.Ident, "atom "+a.Quoted); err != nil {
			return err
		}
		if err := claim(a.Ident+"Marker", "the marker of "+a.Quoted); err != nil {
			return err
		}
	}
	for _, m := range d.Mappings {
		if err := claim(m.Name, "mapping "+m.Name); err != nil {
			return err
		}
		if m.Generic {
			if err := claim(m.Name+"Of", "the accessor of "+m.Name); err != nil {
				return err
			}
		}
	}

	// Typed map methods share one namespace with the atom accessors
	if len(d.Mappings) > 0 {
		for _, a := range d.Atoms {
			if slices.Contains([]string{"Has", "Len", "Clear"}, a.Ident) {
				return buildErr(ErrIdentCollision, "", a.Ident+" names both atom "+a.Quoted+" and a typed map method")
			}
		}
	}
	return nil
}

func cleanImports(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || p == "iter" || p == constants.RuntimeImport || p == constants.ExpectImport || slices.Contains(out, p) {
			continue
		}
		if strings.ContainsAny(p, " \t\r\n\"`\\") {
			return nil, buildErr(ErrBadOption, "", "import "+strconv.Quote(p)+" is not an import path")
		}
		out = append(out, p)
	}
	slices.Sort(out)
	return out, nil
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}
