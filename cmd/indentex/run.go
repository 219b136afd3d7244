package main

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/eolymp/go-indentex"
	"github.com/eolymp/go-indentex/internal/config"
)

// run transpiles every source found under paths and returns number of failures. Failures are logged, they do not
// stop remaining files.
func run(ctx context.Context, log *slog.Logger, cfg *config.Config, paths []string) int {
	var failed atomic.Int64

	var sources []string
	for _, path := range paths {
		found, err := indentex.FindSources(path, cfg.Pattern)
		if err != nil {
			log.Error("unable to find sources", "path", path, "error", err)
			failed.Add(1)
			continue
		}

		if len(found) == 0 {
			log.Warn("no source files found", "path", path, "pattern", cfg.Pattern)
		}

		sources = append(sources, found...)
	}

	jobs := make(chan string)
	opts := cfg.Options()

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for path := range jobs {
				out, err := indentex.TranspileFile(path, opts)
				if err != nil {
					log.Error("unable to transpile file", "input", path, "error", err)
					failed.Add(1)
					continue
				}

				log.Debug("file transpiled", "input", path, "output", out)
			}
		}()
	}

dispatch:
	for _, path := range sources {
		select {
		case jobs <- path:
		case <-ctx.Done():
			log.Warn("interrupted", "error", ctx.Err())
			failed.Add(1)
			break dispatch
		}
	}

	close(jobs)
	wg.Wait()

	return int(failed.Load())
}
