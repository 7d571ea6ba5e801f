package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"catalogd/pkg/config"
	"catalogd/pkg/db"
	"catalogd/pkg/fixtures"
	gormstore "catalogd/pkg/server/store/gorm"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load <fixture.yml>",
	Short: "Load a YAML fixture into the database",
	Long: `Load a YAML fixture of categories and components into the database.

Loading is idempotent: existing categories are reused and components already
present (matched by title) are skipped.

Example:
  catalogctl load fixtures/initial.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := loadFixture(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load fixture: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func loadFixture(path string) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer func() { _ = file.Close() }()

	loader := fixtures.NewLoader(
		gormstore.NewCategoriesStore(gormDB),
		gormstore.NewComponentsStore(gormDB),
	)

	stats, err := loader.LoadFromReader(file)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %s: %d categories created, %d components created, %d skipped\n",
		path, stats.CategoriesCreated, stats.ComponentsCreated, stats.ComponentsSkipped)
	return nil
}
