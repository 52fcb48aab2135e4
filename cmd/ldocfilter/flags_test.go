package main

// Notes:
// - parseFlags: we test defaults, every flag, positional args and that
//   unknown flags return an error instead of printing.
// These are acceptable gaps: pflag parsing internals are not retested.

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, args, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	if *f != (cliFlags{}) {
		t.Errorf("flags = %+v, want zero value", *f)
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseFlags([]string{
		"-c", "ldoc", "-q", "-v",
		"--no-toc", "--no-tables", "--no-inline-code",
		"--toc-start", "<!-- a -->", "--toc-end", "<!-- b -->",
		"-o", "out.md", "--print-config",
		"doc.md",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := cliFlags{
		common: commonFlags{config: "ldoc", quiet: true, verbose: true},
		stages: stageFlags{
			noTOC:        true,
			noTables:     true,
			noInlineCode: true,
			tocStart:     "<!-- a -->",
			tocEnd:       "<!-- b -->",
		},
		output:      "out.md",
		printConfig: true,
	}
	if *f != want {
		t.Errorf("flags = %+v, want %+v", *f, want)
	}
	if len(args) != 1 || args[0] != "doc.md" {
		t.Errorf("args = %v, want [doc.md]", args)
	}
}

func TestParseFlags_LongForms(t *testing.T) {
	t.Parallel()

	f, _, err := parseFlags([]string{"--config=x.yaml", "--quiet", "--verbose", "--output=o.md", "--version", "--help"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.common.config != "x.yaml" || !f.common.quiet || !f.common.verbose {
		t.Errorf("common = %+v", f.common)
	}
	if f.output != "o.md" || !f.version || !f.help {
		t.Errorf("flags = %+v", *f)
	}
}

func TestParseFlags_DashIsPositional(t *testing.T) {
	t.Parallel()

	_, args, err := parseFlags([]string{"-"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 1 || args[0] != "-" {
		t.Errorf("args = %v, want [-]", args)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown long flag", []string{"--unknown"}},
		{"unknown short flag", []string{"-x"}},
		{"missing output value", []string{"-o"}},
		{"missing config value", []string{"--config"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := parseFlags(tt.args); err == nil {
				t.Errorf("parseFlags(%v) should fail", tt.args)
			}
		})
	}
}
