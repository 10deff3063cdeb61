// internal/benchmark/selector_test.go
package benchmark

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ollamabench/ollamabench/internal/appconfig"
)

func TestResolveEmptyRequestSelectsAllModels(t *testing.T) {
	provider := &fakeProvider{models: []string{"b", "a", "c"}}
	selector := &Selector{Provider: provider, Host: appconfig.Host{Name: "test"}}

	resolved, missing, err := selector.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !reflect.DeepEqual(resolved, []string{"b", "a", "c"}) {
		t.Fatalf("expected backend-reported order, got %v", resolved)
	}
	if len(missing) != 0 {
		t.Fatalf("expected no missing models, got %v", missing)
	}
}

func TestResolveFiltersAndWarns(t *testing.T) {
	provider := &fakeProvider{models: []string{"a", "b"}}
	selector := &Selector{Provider: provider, Host: appconfig.Host{Name: "test"}}

	resolved, missing, err := selector.Resolve(context.Background(), []string{"a", "missing", "b"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !reflect.DeepEqual(resolved, []string{"a", "b"}) {
		t.Fatalf("expected requested order intersection, got %v", resolved)
	}
	if !reflect.DeepEqual(missing, []string{"missing"}) {
		t.Fatalf("expected missing to name the absent model, got %v", missing)
	}
}

func TestResolveBackendFailureIsFatal(t *testing.T) {
	backendDown := errors.New("connection refused")
	provider := &fakeProvider{listErr: backendDown}
	selector := &Selector{Provider: provider, Host: appconfig.Host{Name: "test"}}

	_, _, err := selector.Resolve(context.Background(), nil)
	if !errors.Is(err, backendDown) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}
