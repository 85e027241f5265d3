// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "barangay-is",
	Short: "Barangay Information System is a municipal records-management service",
	Long: `Barangay Information System is a web-based records-management service
for barangay administration: resident registry, household composition,
incident logging, community services, the official roster and branding settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
