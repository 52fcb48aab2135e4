// Package ldocfilter prepares Markdown documentation for LDoc.
//
// LDoc's Markdown processor does not understand GitHub-Flavored pipe tables
// and renders auto-generated TOC markers as noise. ldocfilter rewrites both
// ahead of time:
//
//  1. Every span from <!--toc:start--> to the nearest <!--toc:end--> is removed
//  2. Every run of three or more lines bounded by | becomes an HTML <table>,
//     with `inline code` in cells rendered as <code>
//
// # Quick Start
//
// For the default behaviour, call Transform:
//
//	html := ldocfilter.Transform(markdown)
//
// # Configuration
//
// Use functional options to customize a Filter:
//
//	f, err := ldocfilter.NewFilter(
//	    ldocfilter.WithTOCSentinels("<!-- toc -->", "<!-- tocstop -->"),
//	    ldocfilter.WithoutInlineCode(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := f.Apply(ctx, ldocfilter.Input{Text: markdown})
//
// Stream reads a whole document from an io.Reader and writes the result to an
// io.Writer in a single write:
//
//	_, err := f.Stream(ctx, os.Stdin, os.Stdout)
//
// # Limits
//
// This is not a Markdown parser. Escaped pipes, multi-line cells and column
// alignment are not supported: interior pipes always split cells, the
// separator line is discarded, and rows keep whatever cell count they parse
// to. Malformed input never produces an error.
package ldocfilter
