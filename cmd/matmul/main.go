package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd runs the interactive mode menu when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "matmul",
	Short: "Parallel matrix multiplication over a goroutine pool",
	Long: `matmul multiplies dense matrices on a bounded worker pool.

Without a subcommand it offers an interactive menu with the three modes:
multiply two matrix files, the same with an intermediate cell log, or
generate and multiply random matrix pairs through the streaming pipeline.`,
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
