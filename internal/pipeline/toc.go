package pipeline

import "regexp"

// Default sentinels delimiting an auto-generated table of contents.
const (
	DefaultTOCStart = "<!--toc:start-->"
	DefaultTOCEnd   = "<!--toc:end-->"
)

// defaultTOCBlock matches the shortest span from a start sentinel to the
// nearest following end sentinel, newlines included.
var defaultTOCBlock = tocPattern(DefaultTOCStart, DefaultTOCEnd)

// TOCStripper removes sentinel-delimited TOC blocks.
type TOCStripper struct {
	pattern *regexp.Regexp
}

// NewTOCStripper creates a stripper for the given literal sentinels.
// Empty sentinels fall back to the defaults.
func NewTOCStripper(start, end string) *TOCStripper {
	if start == "" {
		start = DefaultTOCStart
	}
	if end == "" {
		end = DefaultTOCEnd
	}
	if start == DefaultTOCStart && end == DefaultTOCEnd {
		return &TOCStripper{pattern: defaultTOCBlock}
	}
	return &TOCStripper{pattern: tocPattern(start, end)}
}

// Strip removes every TOC block, sentinels included, and reports how many
// blocks were removed. A start sentinel without a following end sentinel
// is left in place.
func (s *TOCStripper) Strip(content string) (string, int) {
	removed := 0
	out := s.pattern.ReplaceAllStringFunc(content, func(string) string {
		removed++
		return ""
	})
	return out, removed
}

// StripTOC removes TOC blocks delimited by the default sentinels.
func StripTOC(content string) string {
	return defaultTOCBlock.ReplaceAllString(content, "")
}

func tocPattern(start, end string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `.*?` + regexp.QuoteMeta(end))
}
