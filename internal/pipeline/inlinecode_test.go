package pipeline

import "testing"

func TestInlineCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single span", "`x`", "<code>x</code>"},
		{"span within text", "call `f()` now", "call <code>f()</code> now"},
		{"multiple spans", "`a` and `b`", "<code>a</code> and <code>b</code>"},
		{"no backticks verbatim", "plain cell", "plain cell"},
		{"unpaired backtick literal", "it`s", "it`s"},
		{"third backtick left over", "`a` `b", "<code>a</code> `b"},
		{"empty pair literal", "``", "``"},
		{"html not escaped", "`<br>`", "<code><br></code>"},
		{"dollar sign kept", "`$1`", "<code>$1</code>"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InlineCode(tt.input)
			if got != tt.expected {
				t.Errorf("InlineCode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
