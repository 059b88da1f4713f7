// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Compiler Ceilings, Word Widths & Generator Defaults
//
// Purpose:
//   - Defines the hard limits the atom compiler enforces on a vocabulary.
//   - Lists the native comparison widths the decision tree is lowered onto.
//   - Holds the defaults the generator command falls back to.
//
// Notes:
//   - Vocabularies are expected to hold tens of atoms; the ceilings below only
//     exist so that ordinals always fit a uint16 and literals a length byte.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Vocabulary Limits ─────────────────────────────

const (
	// MaxAtoms bounds the vocabulary so every ordinal fits a uint16.
	MaxAtoms = 1 << 16

	// MaxAtomLen bounds a single atom. Recognition is scoped per length class,
	// and one byte of length is enough for any symbol-like token.
	MaxAtomLen = 255

	// SmallAtomCap is the largest vocabulary whose generated type is a uint8.
	SmallAtomCap = 1 << 8
)

// ───────────────────────────── Comparison Widths ─────────────────────────────

const (
	// MaxWordWidth is the widest single literal comparison, in bytes.
	MaxWordWidth = 8
)

// WordWidths lists the native comparison widths, widest first. Any other
// block length is composed greedily from these.
var WordWidths = [...]int{8, 4, 2, 1}

// ───────────────────────────── Generator Defaults ────────────────────────────

const (
	// DefaultTypeName is the generated atom type name when none is configured.
	DefaultTypeName = "Atom"

	// DefaultPackage is the generated package clause when none is configured.
	DefaultPackage = "atoms"

	// DefaultOutput is the generated file name when none is configured.
	DefaultOutput = "atoms_gen.go"

	// DefaultByteOrder is the literal packing order when none is configured.
	DefaultByteOrder = "little"

	// DefaultConfigName is the config file base name searched for by the CLI.
	DefaultConfigName = "atomgen"

	// DefaultDBQuery selects the vocabulary from a SQLite pairs table.
	DefaultDBQuery = "SELECT symbol FROM pairs ORDER BY id"

	// EnvFile is loaded into the environment before config is read, if present.
	EnvFile = ".env"

	// DefaultLogLevel is the generator's log level when none is configured.
	DefaultLogLevel = "info"

	// EnvPrefix scopes environment overrides (STATICATOM_OUTPUT, ...).
	EnvPrefix = "STATICATOM"

	// RuntimeImport is the import path generated packages reach the atom
	// run-time through; expect sits next to it.
	RuntimeImport = "staticatom/atom"

	// ExpectImport is the import path of the word comparison primitives.
	ExpectImport = "staticatom/expect"

	// FingerprintBytes is how much of the SHA3-256 vocabulary digest is kept.
	FingerprintBytes = 8
)
