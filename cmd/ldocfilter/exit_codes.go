package main

import (
	"errors"
	"os"

	ldocfilter "github.com/alnah/go-ldocfilter"
	"github.com/alnah/go-ldocfilter/internal/config"
	"github.com/alnah/go-ldocfilter/internal/fileutil"
)

// Exit codes for ldocfilter.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments or config
	ExitIO      = 3 // Input unreadable or output unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidSentinel) ||
		errors.Is(err, ldocfilter.ErrInvalidSentinel) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, ldocfilter.ErrReadInput) ||
		errors.Is(err, ldocfilter.ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrOutputIsDirectory) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
