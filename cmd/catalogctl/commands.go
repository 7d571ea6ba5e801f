package main

import (
	"fmt"
	"strings"
)

// runManagementCommand dispatches a --command value from serve.
// Supported commands mirror the standalone subcommands.
func runManagementCommand(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("empty management command")
	}

	switch fields[0] {
	case "migrate":
		return runMigrations()
	case "check":
		return runChecks()
	case "load":
		if len(fields) != 2 {
			return fmt.Errorf("load requires exactly one fixture path")
		}
		return loadFixture(fields[1])
	}
	return fmt.Errorf("unknown management command %q", fields[0])
}
