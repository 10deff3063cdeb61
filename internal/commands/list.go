// internal/commands/list.go
package ollamabench

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group for enumerating resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that enumerate resources on the configured backend.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
