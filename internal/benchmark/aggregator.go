// internal/benchmark/aggregator.go
package benchmark

import (
	"fmt"
	"sync"
	"time"
)

// Aggregator collects per-run Records by model and produces sum-based
// aggregates. Recording and reads are safe for concurrent use, though the
// default session is sequential.
type Aggregator struct {
	mutex   sync.Mutex
	records map[string][]Record
	order   []string
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		records: make(map[string][]Record),
	}
}

// Record appends a per-run measurement to the model's sequence. Incomplete
// records and aggregates are rejected so averages stay well defined.
func (a *Aggregator) Record(rec Record) error {
	if rec.Model == "" {
		return fmt.Errorf("cannot record measurement without a model")
	}
	if !rec.Done {
		return fmt.Errorf("cannot record %s: %w", rec.Model, ErrIncompleteResponse)
	}
	if rec.Runs != 1 {
		return fmt.Errorf("cannot record %s: aggregates must not be re-aggregated", rec.Model)
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if _, exists := a.records[rec.Model]; !exists {
		a.order = append(a.order, rec.Model)
	}
	a.records[rec.Model] = append(a.records[rec.Model], rec)
	return nil
}

// Count returns the number of runs recorded for the model.
func (a *Aggregator) Count(model string) int {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return len(a.records[model])
}

// Models returns the recorded models in first-recorded order.
func (a *Aggregator) Models() []string {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Average returns the model's aggregate record, or false when no runs were
// recorded. Duration and count fields are sums, not means: dividing summed
// counts by summed durations yields the correct aggregate rate, where a
// mean of per-run rates would bias toward short runs. Average is a pure
// read and may be called repeatedly.
func (a *Aggregator) Average(model string) (Record, bool) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.averageLocked(model)
}

func (a *Aggregator) averageLocked(model string) (Record, bool) {
	runs := a.records[model]
	if len(runs) == 0 {
		return Record{}, false
	}

	agg := Record{
		Model:          model,
		CreatedAt:      time.Now(),
		MessageRole:    "system",
		MessageContent: fmt.Sprintf("Average stats across %d runs", len(runs)),
		Done:           true,
		Runs:           len(runs),
	}
	for _, rec := range runs {
		agg.TotalDuration += rec.TotalDuration
		agg.LoadDuration += rec.LoadDuration
		agg.PromptEvalCount += rec.PromptEvalCount
		agg.PromptEvalDuration += rec.PromptEvalDuration
		agg.EvalCount += rec.EvalCount
		agg.EvalDuration += rec.EvalDuration
	}
	return agg, true
}

// AverageAll returns the aggregate record for every model with at least one
// run, in first-recorded order.
func (a *Aggregator) AverageAll() []Record {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	var out []Record
	for _, model := range a.order {
		if agg, ok := a.averageLocked(model); ok {
			out = append(out, agg)
		}
	}
	return out
}
