package main

import "fmt"

// logger writes diagnostics to stderr according to --quiet and --verbose.
type logger struct {
	env     *Environment
	verbose bool
}

func newLogger(env *Environment, f commonFlags) *logger {
	return &logger{env: env, verbose: f.verbose && !f.quiet}
}

// verbosef prints a line only in verbose mode.
func (l *logger) verbosef(format string, args ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.env.Stderr, "ldocfilter: "+format+"\n", args...)
}
