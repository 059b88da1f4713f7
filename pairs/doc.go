// Package pairs is the market pair vocabulary: a generated atom type Pair
// with its recognizer, dense maps and typed maps, plus the quote conventions
// each pair trades under.
//
// Regenerate after editing atoms.yaml:
//
//	go generate ./pairs
package pairs

//go:generate go run staticatom --config atoms.yaml
