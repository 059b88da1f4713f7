package compiler

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// ============================================================================
// TYPED ATOM MAPPINGS
// ============================================================================
//
// A mapping generates a struct holding one optional value per atom, where
// each atom may store a different type. Two forms:
//
//   - Of: a generic type taking one marker parameter. Atom a stores
//     Of[<Ident(a)>Marker], and a generic accessor picks the slot by marker.
//   - Default / Values: explicit per-atom type expressions; atoms not listed
//     in Values store Default.

// MappingValue binds one atom to a value type.
type MappingValue struct {
	Atom string `mapstructure:"atom" yaml:"atom" json:"atom"`
	Type string `mapstructure:"type" yaml:"type" json:"type"`
}

// Mapping configures one generated typed map.
type Mapping struct {
	Name    string         `mapstructure:"name" yaml:"name" json:"name"`
	Of      string         `mapstructure:"of" yaml:"of,omitempty" json:"of,omitempty"`
	Default string         `mapstructure:"default" yaml:"default,omitempty" json:"default,omitempty"`
	Values  []MappingValue `mapstructure:"values" yaml:"values,omitempty" json:"values,omitempty"`
}

// resolvedMapping is a validated Mapping with one value type per ordinal.
type resolvedMapping struct {
	Name    string
	Of      string
	Types   []string
	Generic bool
}

func resolveMapping(m Mapping, v *Vocabulary) (resolvedMapping, error) {
	if !token.IsIdentifier(m.Name) || !token.IsExported(m.Name) {
		return resolvedMapping{}, buildErr(ErrBadMapping, "", "name "+quoteOrEmpty(m.Name)+" is not an exported identifier")
	}
	r := resolvedMapping{Name: m.Name, Types: make([]string, v.Len())}

	if m.Of != "" {
		if m.Default != "" || len(m.Values) > 0 {
			return r, buildErr(ErrBadMapping, "", m.Name+": of excludes default and values")
		}
		if err := checkTypeExpr(m.Of, true); err != nil {
			return r, buildErr(ErrBadMapping, "", m.Name+": of "+quoteOrEmpty(m.Of)+": "+err.Error())
		}
		r.Of, r.Generic = m.Of, true
		for i, a := range v.atoms {
			r.Types[i] = m.Of + "[" + a.Ident + "Marker]"
		}
		return r, nil
	}

	if m.Default != "" {
		if err := checkTypeExpr(m.Default, false); err != nil {
			return r, buildErr(ErrBadMapping, "", m.Name+": default "+quoteOrEmpty(m.Default)+": "+err.Error())
		}
	}
	for _, val := range m.Values {
		n, ok := v.Ordinal(val.Atom)
		if !ok {
			return r, buildErr(ErrBadMapping, val.Atom, m.Name+": not a declared atom")
		}
		if r.Types[n] != "" {
			return r, buildErr(ErrBadMapping, val.Atom, m.Name+": value type given twice")
		}
		if err := checkTypeExpr(val.Type, false); err != nil {
			return r, buildErr(ErrBadMapping, val.Atom, m.Name+": "+quoteOrEmpty(val.Type)+": "+err.Error())
		}
		r.Types[n] = val.Type
	}
	for i, a := range v.atoms {
		if r.Types[i] != "" {
			continue
		}
		if m.Default == "" {
			return r, buildErr(ErrBadMapping, a.Text, m.Name+": no value type and no default")
		}
		r.Types[i] = m.Default
	}
	return r, nil
}

type typeExprError string

func (e typeExprError) Error() string { return string(e) }

// checkTypeExpr accepts the expression forms that can denote a type. With
// generic set it requires a bare or qualified name, which the generator
// instantiates with a marker.
func checkTypeExpr(src string, generic bool) error {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return typeExprError("not a type expression")
	}
	if generic {
		switch expr.(type) {
		case *ast.Ident, *ast.SelectorExpr:
			return nil
		}
		return typeExprError("must name a generic type")
	}
	if !isTypeExpr(expr) {
		return typeExprError("not a type expression")
	}
	return nil
}

func isTypeExpr(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := t.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(t.X)
	case *ast.ArrayType:
		return isTypeExpr(t.Elt)
	case *ast.MapType:
		return isTypeExpr(t.Key) && isTypeExpr(t.Value)
	case *ast.ChanType:
		return isTypeExpr(t.Value)
	case *ast.ParenExpr:
		return isTypeExpr(t.X)
	case *ast.IndexExpr:
		return isTypeExpr(t.X) && isTypeExpr(t.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(t.X) {
			return false
		}
		for _, ix := range t.Indices {
			if !isTypeExpr(ix) {
				return false
			}
		}
		return true
	case *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	}
	return false
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
