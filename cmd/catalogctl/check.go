package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"catalogd/pkg/checks"
	"catalogd/pkg/config"
	"catalogd/pkg/db"
	gormstore "catalogd/pkg/server/store/gorm"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the system checks",
	Long: `Run all registered system checks and report failures.

Exits non-zero when any check fails. The same checks gate the readiness
probe while the server is running.

Example:
  catalogctl check`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runChecks(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func registerBuiltinChecks(cfg *config.Config, health *gormstore.HealthStore, components *gormstore.ComponentsStore) {
	checks.Register("database", checks.DatabaseConnectivity(health))
	if cfg.RequiredComponent != "" {
		checks.Register("components", checks.RequiredComponent(components, cfg.RequiredComponent))
	} else {
		checks.DefaultRegistry.Unregister("components")
	}
}

func runChecks() error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}

	registerBuiltinChecks(cfg, gormstore.NewHealthStore(gormDB), gormstore.NewComponentsStore(gormDB))

	failures := checks.Run(context.Background())
	if len(failures) == 0 {
		fmt.Println("System check identified no issues")
		return nil
	}

	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "%s: %s\n", failure.ID, failure.Message)
		if failure.Hint != "" {
			fmt.Fprintf(os.Stderr, "\tHINT: %s\n", failure.Hint)
		}
	}
	return fmt.Errorf("system check identified %d issue(s)", len(failures))
}
