package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Status printers shared by all subcommands.
var (
	successColor = color.New(color.FgHiGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "civiget",
	Short: "Fetch model artifacts from CivitAI into local model directories",
	Long: `civiget resolves model-version identifiers, download URLs, model page
URLs and AIR resource names into canonical CivitAI download URLs and
streams the artifacts into a local directory.

Accepted inputs:
  - a bare model-version id:      46846
  - an API download URL:          https://civitai.com/api/download/models/46846
  - a model page URL:             https://civitai.com/models/4201?modelVersionId=46846
  - an AIR resource name:         urn:air:flux1:lora:civitai:667004@746484

Authentication for gated content comes from the CIVITAI_TOKEN environment
variable, falling back to ~/.civitai/config.

Examples:
  civiget get 46846 -d ./models
  civiget get urn:air:flux1:lora:civitai:667004@746484 -t lora
  civiget info 46846
  civiget resolve 46846`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
