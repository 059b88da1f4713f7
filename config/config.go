// ============================================================================
// CONFIG: GENERATOR SETTINGS AND VOCABULARY SOURCES
// ============================================================================
//
// Settings resolve in viper's precedence order: command-line flags, then
// STATICATOM_* environment variables (after .env is loaded), then the config
// file, then defaults.
//
// The vocabulary is the concatenation, in this order, of:
//   - atoms:        inline list
//   - atoms_json:   a JSON array of strings
//   - database:     one text column selected from a SQLite database
//
// Ordinals follow that order, so the order of every source is significant.
// File paths are relative to the working directory, which under go generate
// is the directory of the generated package.

package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/sugawarayuuta/sonnet"

	"staticatom/compiler"
	"staticatom/constants"
	"staticatom/debug"
	"staticatom/expect"
)

// Name overrides the derived identifier of one atom.
type Name struct {
	Atom  string `mapstructure:"atom"`
	Ident string `mapstructure:"ident"`
}

// Database selects vocabulary rows from SQLite.
type Database struct {
	Path  string `mapstructure:"path"`
	Query string `mapstructure:"query"`
}

// Config is the fully resolved generator configuration.
type Config struct {
	Package   string             `mapstructure:"package"`
	Type      string             `mapstructure:"type"`
	Output    string             `mapstructure:"output"`
	ByteOrder string             `mapstructure:"byte_order"`
	Atoms     []string           `mapstructure:"atoms"`
	Names     []Name             `mapstructure:"names"`
	AtomsJSON string             `mapstructure:"atoms_json"`
	Database  Database           `mapstructure:"database"`
	Mappings  []compiler.Mapping `mapstructure:"mappings"`
	Imports   []string           `mapstructure:"imports"`
	LogLevel  string             `mapstructure:"log_level"`
	Explain   bool               `mapstructure:"explain"`

	// File is the config file that was read, empty if none was found.
	File string `mapstructure:"-"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"package":    "package",
	"type":       "type",
	"output":     "output",
	"byte-order": "byte_order",
	"atom":       "atoms",
	"atoms-json": "atoms_json",
	"db":         "database.path",
	"db-query":   "database.query",
	"explain":    "explain",
	"log-level":  "log_level",
}

// RegisterFlags declares every flag Load understands.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "config file (default ./"+constants.DefaultConfigName+".{yaml,json,toml})")
	flags.StringP("output", "o", "", "generated file (default "+constants.DefaultOutput+")")
	flags.String("package", "", "generated package name (default "+constants.DefaultPackage+")")
	flags.String("type", "", "generated atom type name (default "+constants.DefaultTypeName+")")
	flags.String("byte-order", "", "literal packing order: little or big (default "+constants.DefaultByteOrder+")")
	flags.StringArray("atom", nil, "atom text, repeatable, in ordinal order")
	flags.String("atoms-json", "", "JSON file holding an array of atom texts")
	flags.String("db", "", "SQLite database to read atoms from")
	flags.String("db-query", "", "query selecting one text column of atoms")
	flags.Bool("explain", false, "print the compiled decision trees as YAML instead of writing Go")
	flags.String("log-level", "", "debug, info, warn or error (default "+constants.DefaultLogLevel+")")
}

// Load resolves the configuration. path names the config file; when empty,
// ./atomgen.{yaml,json,toml} is used if it exists. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(constants.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", constants.EnvFile, err)
	}

	v := viper.New()
	v.SetDefault("package", constants.DefaultPackage)
	v.SetDefault("type", constants.DefaultTypeName)
	v.SetDefault("output", constants.DefaultOutput)
	v.SetDefault("byte_order", constants.DefaultByteOrder)
	v.SetDefault("log_level", constants.DefaultLogLevel)
	v.SetDefault("database.query", constants.DefaultDBQuery)
	v.SetDefault("atoms", []string{})
	v.SetDefault("atoms_json", "")
	v.SetDefault("database.path", "")
	v.SetDefault("explain", false)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName(constants.DefaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if _, err := cfg.Order(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Order parses ByteOrder.
func (c *Config) Order() (expect.Order, error) {
	o, err := expect.ParseOrder(c.ByteOrder)
	if err != nil {
		return 0, fmt.Errorf("config: byte_order %q: %w", c.ByteOrder, err)
	}
	return o, nil
}

// Options returns the compiler options c describes.
func (c *Config) Options() (compiler.Options, error) {
	order, err := c.Order()
	if err != nil {
		return compiler.Options{}, err
	}
	source := ""
	if c.File != "" {
		source = filepath.Base(c.File)
	}
	return compiler.Options{
		Package:  c.Package,
		Type:     c.Type,
		Order:    order,
		Mappings: c.Mappings,
		Imports:  c.Imports,
		Source:   source,
	}, nil
}

// ============================================================================
// VOCABULARY SOURCES
// ============================================================================

// Entries reads every configured source and applies identifier overrides.
// The result is not validated; compiler.NewVocabulary does that.
func (c *Config) Entries(ctx context.Context) ([]compiler.Entry, error) {
	texts := append([]string(nil), c.Atoms...)

	if c.AtomsJSON != "" {
		more, err := readJSON(c.AtomsJSON)
		if err != nil {
			return nil, err
		}
		debug.DropMessage("config", fmt.Sprintf("%d atoms from %s", len(more), c.AtomsJSON))
		texts = append(texts, more...)
	}

	if c.Database.Path != "" {
		more, err := readSQLite(ctx, c.Database.Path, c.Database.Query)
		if err != nil {
			return nil, err
		}
		debug.DropMessage("config", fmt.Sprintf("%d atoms from %s", len(more), c.Database.Path))
		texts = append(texts, more...)
	}

	entries := compiler.Texts(texts...)
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, dup := index[e.Text]; !dup {
			index[e.Text] = i
		}
	}
	for _, n := range c.Names {
		i, ok := index[n.Atom]
		if !ok {
			return nil, fmt.Errorf("config: names: %q is not a declared atom", n.Atom)
		}
		entries[i].Ident = n.Ident
	}
	return entries, nil
}

// Vocabulary reads every source and validates the result.
func (c *Config) Vocabulary(ctx context.Context) (*compiler.Vocabulary, error) {
	entries, err := c.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return compiler.NewVocabulary(entries)
}

func readJSON(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: atoms_json: %w", err)
	}
	var texts []string
	if err := sonnet.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("config: atoms_json %s: %w", path, err)
	}
	return texts, nil
}

func readSQLite(ctx context.Context, path, query string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: database: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer db.Close()

	if query == "" {
		query = constants.DefaultDBQuery
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("config: query %s: %w", path, err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("config: scan %s: %w", path, err)
		}
		texts = append(texts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("config: rows %s: %w", path, err)
	}
	return texts, nil
}
