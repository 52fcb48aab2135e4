package ldocfilter

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadInput       = errors.New("failed to read input")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrInvalidSentinel = errors.New("invalid TOC sentinel")
)
