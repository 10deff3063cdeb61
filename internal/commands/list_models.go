// internal/commands/list_models.go
package ollamabench

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ollamabench/ollamabench/internal/appconfig"
	"github.com/ollamabench/ollamabench/internal/providers"
	"github.com/ollamabench/ollamabench/internal/providers/ollama"
	"github.com/spf13/cobra"
)

var (
	hostStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	modelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	loadedModelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// listModelsCmd implements 'list models', which enumerates all models on the
// configured backend and indicates which models are currently loaded.
var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List all models on the backend",
	Long:  `The 'models' subcommand lists every model available on the configured backend, labeling models currently loaded into memory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		provider := ollama.New(cfg)
		defer provider.Close()
		return listModels(cmd.Context(), provider, cfg.Host, os.Stdout)
	},
}

func listModels(ctx context.Context, provider providers.ChatProvider, host appconfig.Host, out io.Writer) error {
	available, err := provider.ListModels(ctx, host)
	if err != nil {
		return fmt.Errorf("could not list models on %s: %w", host.Name, err)
	}

	loaded := make(map[string]struct{})
	if names, err := provider.LoadedModels(ctx, host); err == nil {
		for _, name := range names {
			loaded[name] = struct{}{}
		}
	}

	fmt.Fprintln(out, hostStyle.Render(fmt.Sprintf("%s:", host.Name)))
	for _, model := range available {
		if _, ok := loaded[model]; ok {
			fmt.Fprintln(out, "  "+loadedModelStyle.Render(fmt.Sprintf("- %s (CURRENTLY LOADED)", model)))
		} else {
			fmt.Fprintln(out, "  "+modelStyle.Render(fmt.Sprintf("- %s", model)))
		}
	}
	return nil
}

func init() {
	listCmd.AddCommand(listModelsCmd)
}
