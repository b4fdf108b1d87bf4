package extglob

import (
	"fmt"
	"io"
)

// FilterOption functions optionally alter how Filter operates.
type FilterOption = func(*filterConfig)

type filterConfig struct {
	goroutines  int
	chunkSize   int
	traceLogger io.Writer
}

// GoroutineLimit limits the number of worker goroutines used by Filter.
// By default (or if n <= 0), it uses one per chunk of candidates.
func GoroutineLimit(n int) FilterOption {
	return func(cfg *filterConfig) {
		cfg.goroutines = n
	}
}

// ChunkSize sets how many candidates each unit of work contains.
// The default is 256.
func ChunkSize(n int) FilterOption {
	return func(cfg *filterConfig) {
		cfg.chunkSize = n
	}
}

// WithTraceLogs logs debugging information for debugging Filter itself to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) FilterOption {
	return func(cfg *filterConfig) {
		cfg.traceLogger = out
	}
}

func (cfg *filterConfig) logf(f string, v ...any) {
	if cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(cfg.traceLogger, f, v...)
}
