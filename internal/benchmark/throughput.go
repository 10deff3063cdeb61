// internal/benchmark/throughput.go
package benchmark

// nanosToSeconds converts a backend-reported nanosecond duration to seconds.
func nanosToSeconds(nanos int64) float64 {
	return float64(nanos) / 1e9
}

// PromptRate returns prompt-processing throughput in tokens per second.
// It fails with ErrUndefinedRate when the prompt evaluation duration is zero,
// never returning infinity or NaN.
func PromptRate(rec Record) (float64, error) {
	if rec.PromptEvalDuration == 0 {
		return 0, ErrUndefinedRate
	}
	return float64(rec.PromptEvalCount) / nanosToSeconds(rec.PromptEvalDuration), nil
}

// GenRate returns generation throughput in tokens per second.
func GenRate(rec Record) (float64, error) {
	if rec.EvalDuration == 0 {
		return 0, ErrUndefinedRate
	}
	return float64(rec.EvalCount) / nanosToSeconds(rec.EvalDuration), nil
}

// CombinedRate returns throughput across both phases: total tokens divided by
// total time, which is not the mean of the two individual rates.
func CombinedRate(rec Record) (float64, error) {
	duration := rec.PromptEvalDuration + rec.EvalDuration
	if duration == 0 {
		return 0, ErrUndefinedRate
	}
	return float64(rec.PromptEvalCount+rec.EvalCount) / nanosToSeconds(duration), nil
}
