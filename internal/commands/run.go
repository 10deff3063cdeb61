// internal/commands/run.go
package ollamabench

import (
	"os"

	"github.com/ollamabench/ollamabench/internal/benchmark"
	"github.com/ollamabench/ollamabench/internal/providers/ollama"
	"github.com/spf13/cobra"
)

var (
	runVerbose bool
	runModels  []string
	runPrompts []string
)

// runCmd executes a benchmark session against the configured backend.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Benchmark models and report throughput statistics",
	Long: `The 'run' command benchmarks each selected model against each prompt,
collecting backend-reported timing telemetry and reporting per-run and
per-model averaged tokens-per-second statistics. Without --models every
available model is benchmarked; without --prompts a built-in prompt set
covering varied workloads is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = runVerbose
		}
		if cmd.Flags().Changed("models") {
			cfg.Models = runModels
		}
		if cmd.Flags().Changed("prompts") {
			cfg.Prompts = runPrompts
		}

		provider := ollama.New(cfg)
		defer provider.Close()

		session := benchmark.NewSession(cfg, provider, os.Stdout)
		return session.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "stream responses and print per-run stats")
	runCmd.Flags().StringSliceVarP(&runModels, "models", "m", nil, "models to benchmark (default: all available)")
	runCmd.Flags().StringArrayVarP(&runPrompts, "prompts", "p", nil, "prompts to benchmark with (default: built-in set)")
}
