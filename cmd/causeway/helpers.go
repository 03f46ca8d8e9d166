package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/causeway/internal/cli"
	"github.com/aretw0/causeway/internal/presentation/tree"
	"github.com/aretw0/causeway/pkg/parse"
)

func loadConfig(cmd *cobra.Command) (cli.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return cli.DefaultConfig(), nil
	}
	return cli.LoadConfig(path)
}

func newRenderer(cmd *cobra.Command) *tree.Renderer {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return tree.NewRenderer(termenv.Ascii)
	}
	return tree.NewRenderer(termenv.ColorProfile())
}

// feedJSONLines decodes one message per line from r into the parser.
// Blank lines are skipped; a malformed line aborts with its line number
// so the offending entry can be found in the source file.
func feedJSONLines(r io.Reader, parser *parse.Parser) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var fields map[string]any
		if err := json.Unmarshal(line, &fields); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := parser.Add(fields); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
