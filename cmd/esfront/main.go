// Command esfront is the reference CLI driving the pipeline end to end (or
// just its lexical stage) over a file, URL, or literal source string.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "esfront",
		Short: "An ECMAScript front-end toolchain",
	}

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newParseCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("esfront failed", "error", err)
		os.Exit(1)
	}
}
