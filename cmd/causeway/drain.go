package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/causeway/pkg/adapters/redis"
	"github.com/aretw0/causeway/pkg/parse"
)

// drainCmd represents the drain command
var drainCmd = &cobra.Command{
	Use:   "drain",
	Short: "Pop messages from a redis destination and render them",
	Long:  `Drains messages from the Redis list a redis destination writes to and prints the reconstructed task trees. Drained messages are removed from the list.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		batch, _ := cmd.Flags().GetInt("batch")

		dest := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithKey(cfg.Redis.Key))

		parser := parse.NewParser()
		total := 0
		for {
			messages, err := dest.Drain(cmd.Context(), batch)
			if err != nil {
				fmt.Printf("Error draining messages: %v\n", err)
				os.Exit(1)
			}
			if len(messages) == 0 {
				break
			}
			total += len(messages)
			for _, m := range messages {
				if err := parser.Add(m); err != nil {
					fmt.Printf("Error parsing message: %v\n", err)
					os.Exit(1)
				}
			}
		}

		if total == 0 {
			fmt.Println("No messages.")
			return
		}
		fmt.Print(newRenderer(cmd).RenderAll(parser.Tasks()))
	},
}

func init() {
	drainCmd.Flags().Int("batch", 100, "Messages to pop per round trip")
	rootCmd.AddCommand(drainCmd)
}
