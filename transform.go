package ldocfilter

import "github.com/alnah/go-ldocfilter/internal/pipeline"

// Default TOC sentinels.
const (
	DefaultTOCStart = pipeline.DefaultTOCStart
	DefaultTOCEnd   = pipeline.DefaultTOCEnd
)

// Transform strips TOC blocks then converts pipe tables to HTML.
func Transform(text string) string {
	return ConvertTables(StripTOC(text))
}

// StripTOC removes every <!--toc:start--> ... <!--toc:end--> span.
func StripTOC(text string) string {
	return pipeline.StripTOC(text)
}

// ConvertTables replaces runs of three or more pipe-delimited lines with
// HTML tables.
func ConvertTables(text string) string {
	return pipeline.ConvertTables(text)
}

// InlineCode transforms `code` to <code>code</code>.
func InlineCode(text string) string {
	return pipeline.InlineCode(text)
}
