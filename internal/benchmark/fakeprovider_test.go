// internal/benchmark/fakeprovider_test.go
package benchmark

import (
	"context"
	"errors"

	"github.com/ollamabench/ollamabench/internal/appconfig"
	"github.com/ollamabench/ollamabench/internal/providers"
)

// fakeResponse scripts one Chat exchange: streamed chunks, optional final
// telemetry, or an injected failure.
type fakeResponse struct {
	chunks   []providers.ChatMessage
	meta     providers.ChatMetadata
	complete bool
	err      error
}

// fakeProvider is an in-memory ChatProvider whose responses are scripted per
// model and consumed in order.
type fakeProvider struct {
	models    []string
	listErr   error
	responses map[string][]fakeResponse
	requests  []providers.ChatRequest
}

func (f *fakeProvider) ListModels(ctx context.Context, host appconfig.Host) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.models, nil
}

func (f *fakeProvider) LoadedModels(ctx context.Context, host appconfig.Host) ([]string, error) {
	return nil, nil
}

func (f *fakeProvider) Chat(ctx context.Context, req providers.ChatRequest, callbacks providers.ChatCallbacks) error {
	f.requests = append(f.requests, req)

	queue := f.responses[req.Model]
	if len(queue) == 0 {
		return errors.New("no scripted response")
	}
	resp := queue[0]
	f.responses[req.Model] = queue[1:]

	if resp.err != nil {
		return resp.err
	}
	for _, chunk := range resp.chunks {
		if callbacks.OnChunk != nil {
			if err := callbacks.OnChunk(chunk); err != nil {
				return err
			}
		}
	}
	if resp.complete && callbacks.OnComplete != nil {
		return callbacks.OnComplete(resp.meta)
	}
	return nil
}

func (f *fakeProvider) Close() error { return nil }

// goodMeta returns completed telemetry with 10 prompt tokens over 1s and 20
// generated tokens over 2s, so both phase rates come out to 10 tokens/sec.
func goodMeta(model string) providers.ChatMetadata {
	return providers.ChatMetadata{
		Model:              model,
		Done:               true,
		TotalDuration:      3_000_000_000,
		LoadDuration:       0,
		PromptEvalCount:    10,
		PromptEvalDuration: 1_000_000_000,
		EvalCount:          20,
		EvalDuration:       2_000_000_000,
	}
}
