package cmd

import (
	"fmt"
	"os"

	"github.com/civiget/civiget/internal/civitai"
	"github.com/civiget/civiget/internal/config"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <model-id-or-url>",
	Short: "Show metadata for a model version",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		client := civitai.NewClient(cfg.BaseURL, cfg.Token)

		url, err := client.Resolve(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s\n", errorColor(err))
			os.Exit(1)
		}
		id, ok := civitai.VersionIDFromURL(url)
		if !ok {
			fmt.Fprintf(os.Stderr, "❌ %s\n", errorColor("no model-version id in "+url))
			os.Exit(1)
		}

		version, err := client.GetModelVersion(cmd.Context(), id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s\n", errorColor(err))
			os.Exit(1)
		}

		fmt.Printf("📦 %s / %s (version %d)\n", version.Model.Name, version.Name, version.ID)
		fmt.Printf("   Type:       %s\n", version.Model.Type)
		if version.BaseModel != "" {
			fmt.Printf("   Base model: %s\n", version.BaseModel)
		}
		fmt.Printf("   Download:   %s\n", version.DownloadURL)
		for _, f := range version.Files {
			marker := " "
			if f.Primary {
				marker = "*"
			}
			fmt.Printf("   %s %s  type=%s format=%s size=%.0f KB", marker, f.Name, f.Type, f.Metadata.Format, f.SizeKB)
			if f.Metadata.FP != "" {
				fmt.Printf(" fp=%s", f.Metadata.FP)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
