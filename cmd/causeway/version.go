package main

import (
	"fmt"

	"github.com/aretw0/causeway"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of causeway",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("causeway version %s\n", causeway.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
