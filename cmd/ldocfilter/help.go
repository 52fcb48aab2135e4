package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ldocfilter [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Prepare Markdown for LDoc: strip <!--toc:start-->...<!--toc:end--> blocks")
	fmt.Fprintln(w, "and convert GitHub-Flavored pipe tables to HTML <table> markup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file (default or \"-\": standard input)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: standard output)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stages:")
	fmt.Fprintln(w, "      --no-toc              Keep TOC blocks")
	fmt.Fprintln(w, "      --toc-start <s>       TOC start sentinel")
	fmt.Fprintln(w, "      --toc-end <s>         TOC end sentinel")
	fmt.Fprintln(w, "      --no-tables           Keep pipe tables as Markdown")
	fmt.Fprintln(w, "      --no-inline-code      Keep backticks in table cells")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Report rewrites and timing on stderr")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ldocfilter < README.md > README.ldoc.md")
	fmt.Fprintln(w, "  ldocfilter -c ldoc docs/api.md -o build/api.md")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config search (for a name without path separators):")
	fmt.Fprintln(w, "  ./<name>.yaml, ./<name>.yml, <user config dir>/go-ldocfilter/<name>.yaml|.yml")
}
