package ldocfilter

import (
	"context"
	"fmt"
	"io"

	"github.com/alnah/go-ldocfilter/internal/pipeline"
)

// Filter runs the TOC and table rewrites with a fixed configuration.
// A Filter holds no per-document state and is safe for concurrent use.
type Filter struct {
	preprocessor pipeline.Preprocessor
}

// NewFilter creates a Filter. With no options its output equals Transform.
func NewFilter(opts ...Option) (*Filter, error) {
	cfg := filterConfig{
		tocStart: DefaultTOCStart,
		tocEnd:   DefaultTOCEnd,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sentinelErr != nil {
		return nil, cfg.sentinelErr
	}

	chain := &pipeline.Chain{}
	if !cfg.noTOC {
		chain.TOC = pipeline.NewTOCStripper(cfg.tocStart, cfg.tocEnd)
	}
	if !cfg.noTables {
		chain.Tables = &pipeline.TableConverter{InlineCode: !cfg.noInline}
	}

	return &Filter{preprocessor: chain}, nil
}

// Apply filters the input text.
// Returns the context error if ctx is done before the pass completes.
func (f *Filter) Apply(ctx context.Context, in Input) (*Result, error) {
	out, stats, err := f.preprocessor.Preprocess(ctx, in.Text)
	if err != nil {
		return nil, err
	}
	return &Result{
		Text:             out,
		BytesRead:        len(in.Text),
		TOCBlocksRemoved: stats.TOCBlocksRemoved,
		TablesConverted:  stats.TablesConverted,
	}, nil
}

// Stream reads all of r, filters it, and writes the result to w in one call.
// Nothing is written if reading fails.
func (f *Filter) Stream(ctx context.Context, r io.Reader, w io.Writer) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	result, err := f.Apply(ctx, Input{Text: string(data)})
	if err != nil {
		return nil, err
	}

	if _, err := io.WriteString(w, result.Text); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return result, nil
}
