package cmd

import (
	"fmt"
	"os"

	"github.com/civiget/civiget/internal/civitai"
	"github.com/civiget/civiget/internal/config"
	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <model-id-or-url>...",
	Short: "Print the canonical download URL for each input without downloading",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		client := civitai.NewClient(cfg.BaseURL, cfg.Token)

		failed := 0
		for _, input := range args {
			url, err := client.Resolve(input)
			if err != nil {
				fmt.Fprintf(os.Stderr, "❌ %s\n", errorColor(err))
				failed++
				continue
			}
			fmt.Println(url)
		}
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
