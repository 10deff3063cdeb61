// internal/benchmark/record.go
// Package benchmark implements the benchmark execution and metrics-aggregation
// engine: it normalizes backend telemetry into canonical records, derives
// throughput rates, runs model/prompt pairs, and aggregates per-model results.
package benchmark

import (
	"errors"
	"fmt"
	"time"

	"github.com/ollamabench/ollamabench/internal/providers"
)

var (
	// ErrIncompleteResponse marks a backend response that cannot be used for
	// statistics: no done marker, or missing/invalid telemetry.
	ErrIncompleteResponse = errors.New("response is not a completed exchange")
	// ErrUndefinedRate marks a throughput computation whose divisor duration is zero.
	ErrUndefinedRate = errors.New("rate undefined for zero duration")
)

// Record is the canonical measurement of one completed request/response
// exchange. Durations are nanoseconds as reported by the backend. A Record
// with Runs > 1 is an aggregate produced by Aggregator.Average and must not
// be recorded again.
type Record struct {
	Model              string
	CreatedAt          time.Time
	MessageRole        string
	MessageContent     string
	Done               bool
	TotalDuration      int64
	LoadDuration       int64
	PromptEvalCount    int
	PromptEvalDuration int64
	EvalCount          int
	EvalDuration       int64
	Runs               int
}

// Normalize converts final chat telemetry into a Record. It fails with
// ErrIncompleteResponse when the exchange never completed or the telemetry
// violates the record invariants (negative durations or counts, empty model).
func Normalize(content providers.ChatMessage, meta providers.ChatMetadata) (Record, error) {
	if !meta.Done {
		return Record{}, fmt.Errorf("%w: done is false", ErrIncompleteResponse)
	}
	if meta.Model == "" {
		return Record{}, fmt.Errorf("%w: missing model identifier", ErrIncompleteResponse)
	}
	if meta.TotalDuration < 0 || meta.LoadDuration < 0 || meta.PromptEvalDuration < 0 || meta.EvalDuration < 0 {
		return Record{}, fmt.Errorf("%w: negative duration", ErrIncompleteResponse)
	}
	if meta.PromptEvalCount < 0 || meta.EvalCount < 0 {
		return Record{}, fmt.Errorf("%w: negative token count", ErrIncompleteResponse)
	}

	return Record{
		Model:              meta.Model,
		CreatedAt:          meta.CreatedAt,
		MessageRole:        content.Role,
		MessageContent:     content.Content,
		Done:               true,
		TotalDuration:      meta.TotalDuration,
		LoadDuration:       meta.LoadDuration,
		PromptEvalCount:    meta.PromptEvalCount,
		PromptEvalDuration: meta.PromptEvalDuration,
		EvalCount:          meta.EvalCount,
		EvalDuration:       meta.EvalDuration,
		Runs:               1,
	}, nil
}
