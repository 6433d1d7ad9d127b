package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/civiget/civiget/internal/civitai"
	"github.com/civiget/civiget/internal/config"
	"github.com/spf13/cobra"
)

var (
	getDir         string
	getType        string
	getTypeMapPath string
	getForceUnsafe bool
	getQuiet       bool
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <model-id-or-url>...",
	Short: "Download one or more model artifacts",
	Long: `Download model artifacts into a destination directory.

The destination is either an explicit directory (--dir) or a model-type code
(--type) looked up in the type-map file, which maps short codes to local
directories:

  types:
    ckpt: /data/models/Stable-diffusion
    lora: /data/models/Lora

Inputs are fetched one at a time. An existing file of the same name is never
overwritten. Unless --force-unsafe is set, versions whose primary file is
not in the safetensors format are refused.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		quiet := getQuiet || cfg.Quiet

		dir, err := destinationDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s\n", errorColor(err))
			os.Exit(1)
		}

		client := civitai.NewClient(cfg.BaseURL, cfg.Token)
		if !quiet {
			client.SetProgress(printProgress)
		}

		failed := 0
		for _, input := range args {
			if err := fetchOne(cmd.Context(), client, input, dir, quiet); err != nil {
				fmt.Fprintf(os.Stderr, "❌ %s\n", errorColor(err))
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func fetchOne(ctx context.Context, client *civitai.Client, input, dir string, quiet bool) error {
	url, err := client.Resolve(input)
	if err != nil {
		return err
	}

	if !getForceUnsafe {
		if err := refuseUnsafe(ctx, client, url); err != nil {
			return err
		}
	}

	if !quiet {
		fmt.Printf("⬇️  Downloading %s...\n", url)
	}
	res, err := client.FetchURL(ctx, url, dir)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Println() // finish the progress line
	}
	fmt.Printf("✅ %s (%d MB in %s)\n",
		successColor("Saved: "+res.Path), res.BytesWritten/1024/1024, res.Duration.Round(time.Millisecond))
	return nil
}

// refuseUnsafe checks the version metadata and rejects artifacts whose
// primary file is not safetensors. Metadata lookup failure is only a
// warning; the origin does not expose metadata for every version.
func refuseUnsafe(ctx context.Context, client *civitai.Client, url string) error {
	id, ok := civitai.VersionIDFromURL(url)
	if !ok {
		return nil
	}
	version, err := client.GetModelVersion(ctx, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  %s\n", warningColor(fmt.Sprintf("could not verify file format: %v", err)))
		return nil
	}
	primary := version.PrimaryFile()
	if primary == nil {
		return nil
	}
	if !primary.IsSafeTensor() {
		return fmt.Errorf("refusing to download %s: format %q is not safetensors (use --force-unsafe to override)",
			primary.Name, primary.Metadata.Format)
	}
	return nil
}

// destinationDir picks the destination: an explicit --dir wins, otherwise
// --type is looked up in the type map.
func destinationDir() (string, error) {
	if getDir != "" {
		return getDir, nil
	}
	if getType == "" {
		return "", fmt.Errorf("no destination: pass --dir or --type")
	}

	path := getTypeMapPath
	if path == "" {
		path = config.DefaultTypeMapPath()
	}
	typeMap, err := config.LoadTypeMap(path)
	if err != nil {
		return "", fmt.Errorf("loading type map: %w", err)
	}
	return typeMap.Dir(getType)
}

func printProgress(name string, written, total int64) {
	if total > 0 {
		fmt.Printf("\r%s: %.2f%%", name, float64(written)/float64(total)*100)
	} else {
		fmt.Printf("\r%s: %d MB", name, written/1024/1024)
	}
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVarP(&getDir, "dir", "d", "", "destination directory")
	getCmd.Flags().StringVarP(&getType, "type", "t", "", "model type code resolved via the type-map file")
	getCmd.Flags().StringVar(&getTypeMapPath, "config", "", "type-map file (default ~/.civiget.yaml)")
	getCmd.Flags().BoolVar(&getForceUnsafe, "force-unsafe", false, "allow non-safetensor files (e.g. .ckpt, .pt); use with caution")
	getCmd.Flags().BoolVarP(&getQuiet, "quiet", "q", false, "suppress progress output")
}
