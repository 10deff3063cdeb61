// internal/benchmark/session.go
package benchmark

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ollamabench/ollamabench/internal/appconfig"
	"github.com/ollamabench/ollamabench/internal/logging"
	"github.com/ollamabench/ollamabench/internal/providers"
	"github.com/ollamabench/ollamabench/internal/util"
)

// Session drives one benchmarking pass: resolve target models, run every
// prompt against every model in order, and report per-run and per-model
// averaged statistics. Per-run failures are logged and skipped; only model
// discovery failure aborts the session.
type Session struct {
	provider   providers.ChatProvider
	host       appconfig.Host
	verbose    bool
	models     []string
	prompts    []string
	out        io.Writer
	printer    *Printer
	aggregator *Aggregator
	failures   int
}

// NewSession builds a Session from the merged configuration. When the config
// names no prompts, DefaultPrompts is used.
func NewSession(cfg *appconfig.Config, provider providers.ChatProvider, out io.Writer) *Session {
	prompts := cfg.Prompts
	if len(prompts) == 0 {
		prompts = DefaultPrompts
	}
	return &Session{
		provider:   provider,
		host:       cfg.Host,
		verbose:    cfg.Verbose,
		models:     cfg.Models,
		prompts:    prompts,
		out:        out,
		printer:    NewPrinter(out),
		aggregator: NewAggregator(),
	}
}

// Failures returns the number of runs that failed during the session.
func (s *Session) Failures() int {
	return s.failures
}

// Run executes the benchmarking pass. Models are processed in resolved order
// and prompts in configured order, one request at a time, so recorded
// sequences match submission order.
func (s *Session) Run(ctx context.Context) error {
	selector := &Selector{Provider: s.provider, Host: s.host}
	resolved, missing, err := selector.Resolve(ctx, s.models)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		s.printer.Warn("some requested models are not available: %s", strings.Join(missing, ", "))
	}
	if len(resolved) == 0 {
		fmt.Fprintln(s.out, "No models to benchmark.")
		return nil
	}

	fmt.Fprintf(s.out, "Evaluating models: [%s]\n\n", strings.Join(resolved, ", "))

	runner := &Runner{Provider: s.provider, Host: s.host, Stream: s.verbose}
	var observer StreamObserver
	if s.verbose {
		observer = func(content string) {
			fmt.Fprint(s.out, content)
		}
	}

	for _, model := range resolved {
		for _, prompt := range s.prompts {
			if s.verbose {
				fmt.Fprintf(s.out, "\n\nBenchmarking: %s\nPrompt: %s\n", model, prompt)
			}

			rec, err := runner.Run(ctx, model, prompt, observer)
			if err != nil {
				s.failures++
				logging.LogEvent("benchmark run failed: %v", err)
				s.printer.Warn("skipping %s (prompt %q): %v", model, util.TruncateRunes(prompt, 48), err)
				continue
			}

			if err := s.aggregator.Record(rec); err != nil {
				s.failures++
				logging.LogEvent("could not record benchmark result: %v", err)
				continue
			}

			if s.verbose {
				fmt.Fprintf(s.out, "\nResponse: %s\n", rec.MessageContent)
				s.printer.RunStats(rec)
			}
		}

		if agg, ok := s.aggregator.Average(model); ok {
			s.printer.AverageStats(agg)
		} else {
			s.printer.Warn("no completed runs for %s", model)
		}
	}

	total := len(resolved) * len(s.prompts)
	fmt.Fprintf(s.out, "\nCompleted %d of %d runs (%d failed).\n", total-s.failures, total, s.failures)
	return nil
}
