// internal/providers/ollama/provider.go
// Package ollama provides a ChatProvider backed by Ollama-compatible HTTP endpoints.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ollamabench/ollamabench/internal/appconfig"
	"github.com/ollamabench/ollamabench/internal/logging"
	"github.com/ollamabench/ollamabench/internal/providers"
)

// Provider implements the providers.ChatProvider interface using Ollama HTTP APIs.
type Provider struct {
	client  *http.Client
	timeout time.Duration
	debug   bool
}

// New constructs a Provider configured with the application's request timeout.
func New(cfg *appconfig.Config) *Provider {
	timeout := cfg.RequestTimeout()
	return &Provider{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{ForceAttemptHTTP2: false},
		},
		timeout: timeout,
		debug:   cfg.Debug,
	}
}

// ollamaTagsResponse defines the structure of the response from the /api/tags endpoint.
type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// ollamaPsResponse defines the structure of the response from the /api/ps endpoint.
type ollamaPsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// chatChunk defines the structure of a single chunk in a chat response. In
// batch mode the whole response decodes into one chatChunk.
type chatChunk struct {
	Model   string `json:"model"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	CreatedAt          time.Time `json:"created_at"`
	Done               bool      `json:"done"`
	TotalDuration      int64     `json:"total_duration"`
	LoadDuration       int64     `json:"load_duration"`
	PromptEvalCount    int       `json:"prompt_eval_count"`
	PromptEvalDuration int64     `json:"prompt_eval_duration"`
	EvalCount          int       `json:"eval_count"`
	EvalDuration       int64     `json:"eval_duration"`
}

// ListModels returns the models available on the host via /api/tags.
func (p *Provider) ListModels(ctx context.Context, host appconfig.Host) ([]string, error) {
	body, err := p.get(ctx, host, "/api/tags")
	if err != nil {
		return nil, err
	}

	var tags ollamaTagsResponse
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("ollama: could not parse /api/tags response: %w", err)
	}

	names := make([]string, len(tags.Models))
	for i, m := range tags.Models {
		names[i] = m.Name
	}
	return names, nil
}

// LoadedModels returns the models currently loaded in memory on the host via /api/ps.
func (p *Provider) LoadedModels(ctx context.Context, host appconfig.Host) ([]string, error) {
	body, err := p.get(ctx, host, "/api/ps")
	if err != nil {
		return nil, err
	}

	var ps ollamaPsResponse
	if err := json.Unmarshal(body, &ps); err != nil {
		return nil, fmt.Errorf("ollama: could not parse /api/ps response: %w", err)
	}

	names := make([]string, len(ps.Models))
	for i, m := range ps.Models {
		names[i] = m.Name
	}
	return names, nil
}

// get issues a GET request against the Ollama API and returns the response body.
func (p *Provider) get(ctx context.Context, host appconfig.Host, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	endpoint := host.URL + path
	if p.debug {
		logging.LogRequest("BENCH->LLM", hostIdentifier(host), "", map[string]string{"method": http.MethodGet, "url": endpoint})
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if p.debug {
		logging.LogRequest("LLM->BENCH", hostIdentifier(host), "", body)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama: %s returned %s: %s", path, resp.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// Chat issues a chat request and forwards output to the provided callbacks.
// With req.Stream set, each incremental chunk's message is handed to OnChunk
// and the final done chunk's telemetry to OnComplete; otherwise the single
// response object produces one OnChunk and one OnComplete call.
func (p *Provider) Chat(ctx context.Context, req providers.ChatRequest, callbacks providers.ChatCallbacks) error {
	hostID := hostIdentifier(req.Host)

	messages := req.Messages
	if messages == nil {
		messages = []providers.ChatMessage{}
	}

	payload := map[string]any{
		"model":    req.Model,
		"messages": messages,
		"stream":   req.Stream,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if p.debug {
		logging.LogRequest("BENCH->LLM", hostID, req.Model, body)
	}

	chatCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(chatCtx, http.MethodPost, req.Host.URL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		if p.debug {
			logging.LogRequest("LLM->BENCH", hostID, req.Model, respBody)
		}
		return fmt.Errorf("ollama: /api/chat returned %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	if !req.Stream {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if p.debug {
			logging.LogRequest("LLM->BENCH", hostID, req.Model, raw)
		}
		return p.handleFinal(raw, req, callbacks, true)
	}

	decoder := json.NewDecoder(resp.Body)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				// Stream ended without a done chunk; OnComplete never fires
				// and the caller treats the exchange as incomplete.
				return nil
			}
			return err
		}
		if p.debug {
			logging.LogRequest("LLM->BENCH", hostID, req.Model, []byte(raw))
		}

		var chunk chatChunk
		if err := json.Unmarshal(raw, &chunk); err != nil {
			return fmt.Errorf("ollama: could not parse stream chunk: %w", err)
		}

		if callbacks.OnChunk != nil {
			if err := callbacks.OnChunk(providers.ChatMessage{Role: chunk.Message.Role, Content: chunk.Message.Content}); err != nil {
				return err
			}
		}

		if chunk.Done {
			return p.handleFinal(raw, req, callbacks, false)
		}
	}
}

// handleFinal validates the terminal payload of an exchange and dispatches
// the callbacks. In batch mode the payload also carries the full message, so
// OnChunk fires once before OnComplete.
func (p *Provider) handleFinal(raw []byte, req providers.ChatRequest, callbacks providers.ChatCallbacks, emitChunk bool) error {
	if err := validateFinalPayload(raw); err != nil {
		return err
	}

	var result chatChunk
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("ollama: could not parse final response: %w", err)
	}

	if emitChunk && callbacks.OnChunk != nil {
		role := result.Message.Role
		if role == "" {
			role = "assistant"
		}
		if err := callbacks.OnChunk(providers.ChatMessage{Role: role, Content: result.Message.Content}); err != nil {
			return err
		}
	}

	if callbacks.OnComplete != nil {
		modelName := result.Model
		if modelName == "" {
			modelName = req.Model
		}
		createdAt := result.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		meta := providers.ChatMetadata{
			Model:              modelName,
			CreatedAt:          createdAt,
			Done:               result.Done,
			TotalDuration:      result.TotalDuration,
			LoadDuration:       result.LoadDuration,
			PromptEvalCount:    result.PromptEvalCount,
			PromptEvalDuration: result.PromptEvalDuration,
			EvalCount:          result.EvalCount,
			EvalDuration:       result.EvalDuration,
		}
		if err := callbacks.OnComplete(meta); err != nil {
			return err
		}
	}

	return nil
}

func hostIdentifier(host appconfig.Host) string {
	if strings.TrimSpace(host.Name) != "" {
		return host.Name
	}
	return host.URL
}

// Close releases any resources held by the provider.
func (p *Provider) Close() error {
	return nil
}
