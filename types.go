package ldocfilter

import (
	"fmt"
	"strings"
)

// Input contains the document to filter.
type Input struct {
	Text string
}

// Result holds the filtered document and what was rewritten.
type Result struct {
	Text             string
	BytesRead        int
	TOCBlocksRemoved int
	TablesConverted  int
}

// Option configures a Filter.
type Option func(*filterConfig)

// filterConfig holds internal configuration for Filter.
type filterConfig struct {
	tocStart    string
	tocEnd      string
	noTOC       bool
	noTables    bool
	noInline    bool
	sentinelErr error
}

// WithTOCSentinels sets the literal start and end markers of a TOC block.
// NewFilter returns ErrInvalidSentinel if either is empty, contains a
// newline, or both are equal.
func WithTOCSentinels(start, end string) Option {
	return func(c *filterConfig) {
		c.tocStart = start
		c.tocEnd = end
		c.sentinelErr = validateSentinels(start, end)
	}
}

// WithoutTOCStripping leaves TOC blocks in place.
func WithoutTOCStripping() Option {
	return func(c *filterConfig) { c.noTOC = true }
}

// WithoutTables leaves pipe tables in place.
func WithoutTables() Option {
	return func(c *filterConfig) { c.noTables = true }
}

// WithoutInlineCode keeps backticks in table cells as written.
func WithoutInlineCode() Option {
	return func(c *filterConfig) { c.noInline = true }
}

func validateSentinels(start, end string) error {
	switch {
	case start == "" || end == "":
		return fmt.Errorf("%w: start and end must be non-empty", ErrInvalidSentinel)
	case strings.ContainsAny(start+end, "\r\n"):
		return fmt.Errorf("%w: sentinels cannot contain line breaks", ErrInvalidSentinel)
	case start == end:
		return fmt.Errorf("%w: start and end must differ (both %q)", ErrInvalidSentinel, start)
	}
	return nil
}
