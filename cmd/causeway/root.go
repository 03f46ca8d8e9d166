package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "causeway",
	Short: "Causeway inspects causal action logs",
	Long:  `Causeway reads the structured messages a causeway-instrumented program emits and reconstructs the task trees behind them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a causeway.yaml config file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
