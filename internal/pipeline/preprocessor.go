package pipeline

import "context"

// Stats counts the rewrites performed by a preprocessing pass.
type Stats struct {
	TOCBlocksRemoved int
	TablesConverted  int
}

// Preprocessor defines the contract for document preprocessing.
type Preprocessor interface {
	Preprocess(ctx context.Context, content string) (string, Stats, error)
}

// Compile-time interface implementation check.
var _ Preprocessor = (*Chain)(nil)

// Chain strips TOC blocks then converts tables. A nil stage is skipped.
type Chain struct {
	TOC    *TOCStripper
	Tables *TableConverter
}

// NewChain returns a chain with both stages using their defaults.
func NewChain() *Chain {
	return &Chain{
		TOC:    NewTOCStripper(DefaultTOCStart, DefaultTOCEnd),
		Tables: NewTableConverter(),
	}
}

// Preprocess applies the enabled stages in order.
// The context is checked before each stage; there is no partial output.
func (c *Chain) Preprocess(ctx context.Context, content string) (string, Stats, error) {
	var stats Stats

	if err := ctx.Err(); err != nil {
		return "", stats, err
	}
	if c.TOC != nil {
		content, stats.TOCBlocksRemoved = c.TOC.Strip(content)
	}

	if err := ctx.Err(); err != nil {
		return "", Stats{}, err
	}
	if c.Tables != nil {
		content, stats.TablesConverted = c.Tables.Convert(content)
	}

	return content, stats, nil
}
