package main

import (
	"github.com/spf13/cobra"
)

// dbCmd groups the database schema commands
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database schema commands",
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
