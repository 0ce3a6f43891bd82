package cli

import (
	"github.com/mehtalab/fixlab/internal/version"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "fixlab",
	Short:   "Behavioral experiment runner for drag-and-drop puzzle tasks",
	Long:    `Fixlab presents participants with a series of interactive physical puzzles, records every action, and appends one CSV row per task run.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "fixlab.yaml", "Path to the config file")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(demoCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
