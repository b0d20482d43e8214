package dct

import "log/slog"

// Options are the optional transform settings. A nil *Options behaves like
// the zero value.
type Options struct {
	// Logger, when non-nil, receives a Debug-level record for every axis
	// pass of a transform.
	Logger *slog.Logger

	// Workers bounds the number of goroutines used to transform the
	// independent lines of an axis pass. Values below 2 run the pass
	// sequentially. Results do not depend on Workers.
	Workers int
}

// settings collapses a trailing optional Options argument to a usable value.
func settings(opts []*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0]
	}
	return &Options{}
}
