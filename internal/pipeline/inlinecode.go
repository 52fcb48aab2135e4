package pipeline

import "regexp"

// inlineCodePattern matches a backtick pair around at least one non-backtick character.
var inlineCodePattern = regexp.MustCompile("`([^`]+)`")

// InlineCode transforms `code` to <code>code</code>.
// The enclosed text is not escaped, and an unpaired backtick stays literal.
func InlineCode(text string) string {
	return inlineCodePattern.ReplaceAllString(text, "<code>${1}</code>")
}
