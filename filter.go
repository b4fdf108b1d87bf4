package extglob

import (
	"context"
	"sync"
)

// Filter returns the candidates that match the pattern, in their original
// order. Candidates are matched in chunks by a pool of worker goroutines.
// If ctx is cancelled before all chunks are matched, Filter returns the
// cause.
func (p *Pattern) Filter(ctx context.Context, candidates []string, opts ...FilterOption) ([]string, error) {
	cfg := &filterConfig{
		chunkSize: 256,
	}

	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	if cfg.chunkSize <= 0 {
		cfg.chunkSize = 256
	}

	chunks := (len(candidates) + cfg.chunkSize - 1) / cfg.chunkSize

	// Spin up this many worker goroutines.
	if cfg.goroutines <= 0 || cfg.goroutines > chunks {
		cfg.goroutines = chunks
	}

	// Each worker writes to distinct indexes.
	matched := make([]bool, len(candidates))

	workCh := make(chan filterWork)
	wctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	var wg sync.WaitGroup
	for i := 0; i < cfg.goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := p.filterWorker(wctx, cfg, id, workCh, candidates, matched); err != nil {
				cancel(err)
			}
		}(i)
	}

	// Feed work to the workers
feed:
	for lo := 0; lo < len(candidates); lo += cfg.chunkSize {
		work := filterWork{
			lo: lo,
			hi: min(lo+cfg.chunkSize, len(candidates)),
		}
		select {
		case <-wctx.Done():
			break feed

		case workCh <- work:
			// work has been fed
		}
	}
	close(workCh)

	wg.Wait()
	if err := context.Cause(wctx); err != nil {
		return nil, err
	}

	var out []string
	for i, c := range candidates {
		if matched[i] {
			out = append(out, c)
		}
	}
	return out, nil
}

type filterWork struct {
	lo, hi int
}

func (p *Pattern) filterWorker(ctx context.Context, cfg *filterConfig, id int, workCh <-chan filterWork, candidates []string, matched []bool) error {
	for {
		var work filterWork
		select {
		case w, open := <-workCh:
			if !open {
				return nil
			}
			work = w

		case <-ctx.Done():
			return ctx.Err()
		}

		cfg.logf("worker %d: matching %q against candidates [%d, %d)\n", id, p.raw, work.lo, work.hi)
		for i := work.lo; i < work.hi; i++ {
			matched[i] = p.Match(candidates[i])
		}
	}
}
