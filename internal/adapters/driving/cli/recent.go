package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage the recent files list",
	RunE:  runRecentList,
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently opened files",
	Args:  cobra.NoArgs,
	RunE:  runRecentList,
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recent files list",
	Args:  cobra.NoArgs,
	RunE:  runRecentClear,
}

func init() {
	recentCmd.AddCommand(recentListCmd)
	recentCmd.AddCommand(recentClearCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecentList(cmd *cobra.Command, _ []string) error {
	svc, err := preferencesService()
	if err != nil {
		return err
	}

	paths, err := svc.Recent()
	if err != nil {
		cmd.Printf("Warning: %v\n\n", err)
	}

	if len(paths) == 0 {
		cmd.Println("No recent files")
		return nil
	}
	for i, p := range paths {
		cmd.Printf("%2d. %s\n", i+1, p)
	}
	return nil
}

func runRecentClear(cmd *cobra.Command, _ []string) error {
	svc, err := preferencesService()
	if err != nil {
		return err
	}
	if err := svc.ClearRecent(); err != nil {
		return fmt.Errorf("failed to clear recent files: %w", err)
	}
	cmd.Println("Recent files cleared")
	return nil
}
