package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	ldocfilter "github.com/alnah/go-ldocfilter"
	"github.com/alnah/go-ldocfilter/internal/config"
	"github.com/alnah/go-ldocfilter/internal/fileutil"
	"github.com/alnah/go-ldocfilter/internal/hints"
	"github.com/alnah/go-ldocfilter/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags = errors.New("invalid flags")
	ErrTooManyArgs  = errors.New("too many arguments: expected at most one input file")
)

// stdinName is the positional argument that selects standard input.
const stdinName = "-"

// filePermissions is the mode of files written with --output.
const filePermissions = 0o644 // rw-r--r--

// runMain runs the CLI, reports any error on stderr, and returns the exit code.
func runMain(args []string, env *Environment) int {
	err := run(context.Background(), args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "ldocfilter: %v\n", err)
	}
	return exitCodeFor(err)
}

// run parses arguments, resolves configuration, and filters one document.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrInvalidFlags, err, hints.ForUsage())
	}

	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "ldocfilter %s\n", Version)
		return nil
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w (got %d)%s", ErrTooManyArgs, len(positional), hints.ForUsage())
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	if flags.printConfig {
		return printConfig(env.Stdout, cfg)
	}

	filter, err := ldocfilter.NewFilter(filterOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForInvalidSentinel())
	}

	input := stdinName
	if len(positional) == 1 {
		input = positional[0]
	}

	log := newLogger(env, flags.common)
	start := env.Now()

	result, err := filterDocument(ctx, filter, input, flags.output, env)
	if err != nil {
		return err
	}

	log.verbosef("%s: read %d bytes, removed %d TOC blocks, converted %d tables in %s",
		displayName(input), result.BytesRead, result.TOCBlocksRemoved, result.TablesConverted,
		env.Now().Sub(start).Round(time.Microsecond))
	return nil
}

// resolveConfig loads the config file, if any, and applies flag overrides.
// Flags win over the file.
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if name := flags.common.config; name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, withConfigHint(err, name)
		}
		cfg = loaded
	}

	s := flags.stages
	if s.noTOC {
		cfg.TOC.Enabled = boolPtr(false)
	}
	if s.noTables {
		cfg.Tables.Enabled = boolPtr(false)
	}
	if s.noInlineCode {
		cfg.Tables.InlineCode = boolPtr(false)
	}
	if s.tocStart != "" {
		cfg.TOC.Start = s.tocStart
	}
	if s.tocEnd != "" {
		cfg.TOC.End = s.tocEnd
	}

	if err := cfg.Validate(); err != nil {
		return nil, withConfigHint(err, flags.common.config)
	}
	return cfg, nil
}

func withConfigHint(err error, name string) error {
	switch {
	case errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name):
		return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
	case errors.Is(err, config.ErrInvalidSentinel):
		return fmt.Errorf("%w%s", err, hints.ForInvalidSentinel())
	}
	return err
}

// filterOptions maps a resolved config to filter options.
func filterOptions(cfg *config.Config) []ldocfilter.Option {
	var opts []ldocfilter.Option
	if cfg.TOCEnabled() {
		opts = append(opts, ldocfilter.WithTOCSentinels(cfg.Sentinels()))
	} else {
		opts = append(opts, ldocfilter.WithoutTOCStripping())
	}
	if !cfg.TablesEnabled() {
		opts = append(opts, ldocfilter.WithoutTables())
	}
	if !cfg.InlineCodeEnabled() {
		opts = append(opts, ldocfilter.WithoutInlineCode())
	}
	return opts
}

// filterDocument reads input (a path or "-"), filters it, and writes the
// result to output (a path, or stdout when empty).
func filterDocument(ctx context.Context, f *ldocfilter.Filter, input, output string, env *Environment) (*ldocfilter.Result, error) {
	in, closeInput, err := openInput(input, env)
	if err != nil {
		return nil, err
	}
	defer closeInput()

	if output == "" {
		result, err := f.Stream(ctx, in, env.Stdout)
		if err != nil && errors.Is(err, syscall.EPIPE) {
			return nil, fmt.Errorf("%w%s", err, hints.ForBrokenPipe())
		}
		return result, err
	}

	var buf bytes.Buffer
	result, err := f.Stream(ctx, in, &buf)
	if err != nil {
		return nil, err
	}
	if err := fileutil.WriteFileAtomic(output, buf.String(), filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %w%s", ldocfilter.ErrWriteOutput, err, hints.ForOutputFile())
	}
	return result, nil
}

// openInput returns the reader for a path, or stdin for "-".
func openInput(input string, env *Environment) (io.Reader, func(), error) {
	if input == stdinName {
		return env.Stdin, func() {}, nil
	}

	file, err := os.Open(input) // #nosec G304 -- input path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %w%s", ldocfilter.ErrReadInput, err, hints.ForInputNotFound())
		}
		return nil, nil, fmt.Errorf("%w: %w", ldocfilter.ErrReadInput, err)
	}
	return file, func() { _ = file.Close() }, nil
}

// printConfig writes the effective configuration as YAML, defaults filled in.
func printConfig(w io.Writer, cfg *config.Config) error {
	start, end := cfg.Sentinels()
	effective := config.Config{
		TOC: config.TOCConfig{
			Enabled: boolPtr(cfg.TOCEnabled()),
			Start:   start,
			End:     end,
		},
		Tables: config.TablesConfig{
			Enabled:    boolPtr(cfg.TablesEnabled()),
			InlineCode: boolPtr(cfg.InlineCodeEnabled()),
		},
	}

	data, err := yamlutil.Marshal(effective)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ldocfilter.ErrWriteOutput, err)
	}
	return nil
}

func displayName(input string) string {
	if input == stdinName {
		return "<stdin>"
	}
	return input
}

func boolPtr(b bool) *bool { return &b }
