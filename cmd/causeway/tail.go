package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/causeway/pkg/parse"
)

// tailCmd represents the tail command
var tailCmd = &cobra.Command{
	Use:   "tail [file]",
	Short: "Render a causal log file as task trees",
	Long:  `Reads JSON-lines messages from a file (or stdin when the file is "-" or omitted) and prints each reconstructed task as a tree with its success/failure outcome.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		path := cfg.File
		if len(args) > 0 {
			path = args[0]
		}

		in := os.Stdin
		if path != "" && path != "-" {
			f, err := os.Open(path)
			if err != nil {
				fmt.Printf("Error opening log file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			in = f
		}

		parser := parse.NewParser()
		if err := feedJSONLines(in, parser); err != nil {
			fmt.Printf("Error reading messages: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(newRenderer(cmd).RenderAll(parser.Tasks()))
	},
}

func init() {
	rootCmd.AddCommand(tailCmd)
}
