// Package feed is the token vocabulary of a market-data feed connection:
// channel names and the binary control frames sent on the same socket.
// Literals are packed big endian.
//
// Regenerate after editing atoms.yaml:
//
//	go generate ./feed
package feed

//go:generate go run staticatom --config atoms.yaml
