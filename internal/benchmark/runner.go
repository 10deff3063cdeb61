// internal/benchmark/runner.go
package benchmark

import (
	"context"
	"fmt"

	"github.com/ollamabench/ollamabench/internal/appconfig"
	"github.com/ollamabench/ollamabench/internal/providers"
	"github.com/ollamabench/ollamabench/internal/util"
)

// RunError reports a failed benchmark run. It is contained at the runner
// boundary: the session logs it and continues with the next prompt or model.
type RunError struct {
	Model  string
	Prompt string
	Cause  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("benchmark %s (prompt %q): %v", e.Model, util.TruncateRunes(e.Prompt, 48), e.Cause)
}

func (e *RunError) Unwrap() error {
	return e.Cause
}

// StreamObserver receives incremental completion content for live display.
type StreamObserver func(content string)

// Runner executes one (model, prompt) benchmark exchange at a time.
type Runner struct {
	Provider providers.ChatProvider
	Host     appconfig.Host
	// Stream requests a streamed completion; incremental content is forwarded
	// to the observer and only the final chunk's telemetry is normalized.
	Stream bool
}

// Run sends a single-turn user prompt to the model and normalizes the final
// telemetry into a Record. Every failure, from the backend call through
// normalization, is wrapped in a *RunError; no retry is attempted.
func (r *Runner) Run(ctx context.Context, model, prompt string, observer StreamObserver) (Record, error) {
	req := providers.ChatRequest{
		Host:   r.Host,
		Model:  model,
		Stream: r.Stream,
		Messages: []providers.ChatMessage{{
			Role:    "user",
			Content: prompt,
		}},
	}

	var (
		content   providers.ChatMessage
		meta      providers.ChatMetadata
		completed bool
	)
	callbacks := providers.ChatCallbacks{
		OnChunk: func(msg providers.ChatMessage) error {
			if msg.Role != "" {
				content.Role = msg.Role
			}
			content.Content += msg.Content
			if observer != nil {
				observer(msg.Content)
			}
			return nil
		},
		OnComplete: func(m providers.ChatMetadata) error {
			meta = m
			completed = true
			return nil
		},
	}

	if err := r.Provider.Chat(ctx, req, callbacks); err != nil {
		return Record{}, &RunError{Model: model, Prompt: prompt, Cause: err}
	}
	if !completed {
		return Record{}, &RunError{Model: model, Prompt: prompt, Cause: fmt.Errorf("%w: no final response received", ErrIncompleteResponse)}
	}

	rec, err := Normalize(content, meta)
	if err != nil {
		return Record{}, &RunError{Model: model, Prompt: prompt, Cause: err}
	}
	return rec, nil
}
