package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "legacy-tags",
	Short: "Check legacy struct tags",
	Long:  "legacy-tags loads Go packages and validates the legacy:\"...\" struct tags\nand YAML mix-ins that drive the legacy introspector.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.Version = version
}

func newLogger() (*zap.Logger, error) {
	if !rootFlags.verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopmentConfig().Build()
}
