package pipeline

// Notes:
// - These tests check the generated markup through an HTML5 parser so they
//   hold regardless of indentation.

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertTables_HTMLStructure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      []parsedTable
		wantCodes int
	}{
		{
			name:  "two column example",
			input: "|A|B|\n|---|---|\n|1|2|\n",
			want: []parsedTable{{
				Header: []string{"A", "B"},
				Rows:   [][]string{{"1", "2"}},
			}},
		},
		{
			name:  "inline code cells",
			input: "| Flag | Meaning |\n|---|---|\n| `-v` | verbose |\n| `-q` | quiet |\n",
			want: []parsedTable{{
				Header: []string{"Flag", "Meaning"},
				Rows:   [][]string{{"-v", "verbose"}, {"-q", "quiet"}},
			}},
			wantCodes: 2,
		},
		{
			name:  "uneven rows",
			input: "|A|B|C|\n|-|-|-|\n|1|\n|1|2|3|4|\n",
			want: []parsedTable{{
				Header: []string{"A", "B", "C"},
				Rows:   [][]string{{"1"}, {"1", "2", "3", "4"}},
			}},
		},
		{
			name:  "two tables in prose",
			input: "Intro.\n\n|X|\n|-|\n|1|\n\nMiddle.\n\n|Y|\n|-|\n|2|\n|3|\n\nEnd.\n",
			want: []parsedTable{
				{Header: []string{"X"}, Rows: [][]string{{"1"}}},
				{Header: []string{"Y"}, Rows: [][]string{{"2"}, {"3"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTables(t, ConvertTables(tt.input))
			codes := 0
			for i := range got {
				codes += got[i].Codes
				got[i].Codes = 0
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tables mismatch (-want +got):\n%s", diff)
			}
			if codes != tt.wantCodes {
				t.Errorf("code elements = %d, want %d", codes, tt.wantCodes)
			}
		})
	}
}
