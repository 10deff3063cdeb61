// internal/benchmark/selector.go
package benchmark

import (
	"context"
	"fmt"

	"github.com/ollamabench/ollamabench/internal/appconfig"
	"github.com/ollamabench/ollamabench/internal/providers"
)

// Selector resolves requested model names against the backend's available set.
type Selector struct {
	Provider providers.ChatProvider
	Host     appconfig.Host
}

// Resolve returns the models to benchmark. An empty request selects every
// available model in backend-reported order; otherwise the requested order is
// preserved and names absent from the backend are returned in missing rather
// than treated as an error. Only backend discovery failure is fatal.
func (s *Selector) Resolve(ctx context.Context, requested []string) (resolved, missing []string, err error) {
	available, err := s.Provider.ListModels(ctx, s.Host)
	if err != nil {
		return nil, nil, fmt.Errorf("could not list models on %s: %w", s.Host.Name, err)
	}

	if len(requested) == 0 {
		return available, nil, nil
	}

	availableSet := make(map[string]struct{}, len(available))
	for _, name := range available {
		availableSet[name] = struct{}{}
	}

	for _, name := range requested {
		if _, ok := availableSet[name]; ok {
			resolved = append(resolved, name)
		} else {
			missing = append(missing, name)
		}
	}
	return resolved, missing, nil
}
