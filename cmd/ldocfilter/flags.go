package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output verbosity and config selection.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// stageFlags holds per-stage overrides. Empty strings and false values
// leave the config file's setting in place.
type stageFlags struct {
	noTOC        bool
	noTables     bool
	noInlineCode bool
	tocStart     string
	tocEnd       string
}

// cliFlags holds all flags of ldocfilter.
type cliFlags struct {
	common      commonFlags
	stages      stageFlags
	output      string
	printConfig bool
	version     bool
	help        bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report rewrites and timing on stderr")
}

// addStageFlags adds stage control flags to a FlagSet.
func addStageFlags(fs *flag.FlagSet, f *stageFlags) {
	fs.BoolVar(&f.noTOC, "no-toc", false, "keep TOC blocks")
	fs.BoolVar(&f.noTables, "no-tables", false, "keep pipe tables as Markdown")
	fs.BoolVar(&f.noInlineCode, "no-inline-code", false, "keep backticks in table cells")
	fs.StringVar(&f.tocStart, "toc-start", "", "TOC start sentinel (default \"<!--toc:start-->\")")
	fs.StringVar(&f.tocEnd, "toc-end", "", "TOC end sentinel (default \"<!--toc:end-->\")")
}

// parseFlags parses command-line flags and returns positional args.
// Help requests surface as flag.ErrHelp; nothing is printed here.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("ldocfilter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	addCommonFlags(fs, &f.common)
	addStageFlags(fs, &f.stages)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
