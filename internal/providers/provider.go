// internal/providers/provider.go

// Package providers defines the interface for talking to an inference backend.
// It abstracts model enumeration and chat completions so the benchmarking
// engine never depends on a concrete HTTP API.
package providers

import (
	"context"
	"time"

	"github.com/ollamabench/ollamabench/internal/appconfig"
)

// ChatMessage represents a single message in a chat conversation.
// It contains the role of the message sender (e.g., "user", "assistant") and the message content.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatMetadata contains the backend-reported telemetry of a completed chat
// exchange: timing in nanoseconds and token counts for both phases.
type ChatMetadata struct {
	Model              string
	CreatedAt          time.Time
	Done               bool
	TotalDuration      int64
	LoadDuration       int64
	PromptEvalCount    int
	PromptEvalDuration int64
	EvalCount          int
	EvalDuration       int64
}

// ChatRequest encapsulates all the information needed to issue a chat completion.
type ChatRequest struct {
	Host     appconfig.Host
	Model    string
	Messages []ChatMessage
	Stream   bool
}

// ChatCallbacks defines the callback functions invoked during a chat exchange.
// OnChunk is called for each incremental message (once, with the full message,
// in batch mode), and OnComplete is called with the final telemetry.
type ChatCallbacks struct {
	OnChunk    func(ChatMessage) error
	OnComplete func(ChatMetadata) error
}

// ChatProvider is the interface an inference backend must implement.
type ChatProvider interface {
	// ListModels returns the models available on the host, in backend-reported order.
	ListModels(ctx context.Context, host appconfig.Host) ([]string, error)
	// LoadedModels returns the models currently loaded into memory on the host.
	LoadedModels(ctx context.Context, host appconfig.Host) ([]string, error)
	// Chat issues a chat completion, streaming or batch, and forwards output to the callbacks.
	Chat(ctx context.Context, req ChatRequest, callbacks ChatCallbacks) error
	// Close cleans up any resources used by the provider.
	Close() error
}
