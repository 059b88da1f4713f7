// ════════════════════════════════════════════════════════════════════════════════════════════════
// staticatom - Atom Compiler Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Generator Command
//
// Description:
//   Compiles a closed vocabulary of short byte strings into a Go package: a
//   branch-minimal recognizer, a dense ordinal per atom, and containers keyed
//   by those ordinals. Meant to be run from //go:generate.
//
// Pipeline:
//   - Resolve configuration (flags → env → file → defaults)
//   - Read the vocabulary from every configured source
//   - Validate, build one trie per length class, lower literals to words
//   - Emit, gofmt and atomically write the package (or explain it as YAML)
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"staticatom/compiler"
	"staticatom/config"
	"staticatom/debug"
	"staticatom/utils"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MAIN ORCHESTRATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		debug.DropError("staticatom", err)
		_ = debug.Logger().Sync()
		os.Exit(1)
	}
}

// run executes one generator invocation. Explain output goes to stdout.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("staticatom", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", flags.Args())
	}
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, flags)
	if err != nil {
		return err
	}
	debug.SetLogger(debug.NewLogger(cfg.LogLevel))
	if cfg.File != "" {
		debug.DropMessage("config", cfg.File)
	}

	vocab, err := cfg.Vocabulary(ctx)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	prog, err := compiler.Compile(vocab, opts.Order)
	if err != nil {
		return err
	}
	st := prog.Stats()
	debug.DropTrace("compile", "decision trees built",
		zap.Int("atoms", vocab.Len()),
		zap.Int("classes", st.Classes),
		zap.Int("nodes", st.Nodes),
		zap.Int("blocks", st.Blocks),
		zap.Int("depth", st.MaxDepth))

	if cfg.Explain {
		return prog.Explain(stdout)
	}

	src, err := prog.Source(opts)
	if err != nil {
		return err
	}
	if err := writeAtomic(cfg.Output, src); err != nil {
		return err
	}
	debug.DropMessage("generate", cfg.Output+": "+utils.Itoa(vocab.Len())+" atoms, "+
		utils.Itoa(st.Classes)+" length classes, fingerprint "+compiler.Fingerprint(vocab))
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// OUTPUT
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// writeAtomic replaces path with data so readers never observe a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("output: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
