// cmd/ollamabench/main.go
package main

import (
	cmd "github.com/ollamabench/ollamabench/internal/commands"
)

// main starts the ollamabench CLI by delegating to the cobra root command
// defined in the commands package.
func main() {
	cmd.Execute()
}
