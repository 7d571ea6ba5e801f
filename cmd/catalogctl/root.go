package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"catalogd/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Catalog application server and management commands",
	Long: `catalogctl runs the component catalog server and its management
commands: migrations, system checks, fixture loading and readiness waiting.

Configuration is read from a .env file in the working directory (override
with --env-file); environment variables take precedence.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		envFile, _ := cmd.Flags().GetString("env-file")
		config.Init(envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "path to the .env configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
