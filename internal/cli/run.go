package cli

import (
	"fmt"

	"github.com/mehtalab/fixlab/internal/config"
	"github.com/mehtalab/fixlab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	runDataFile string
	runFPS      int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a session for a new participant",
	Long:  `Start the full experiment flow: welcome screen, the task battery in this participant's order, and a closing screen. Results are appended to the configured data file.`,
	RunE:  runSession,
}

func init() {
	runCmd.Flags().StringVar(&runDataFile, "data", "", "Data file path (overrides config)")
	runCmd.Flags().IntVar(&runFPS, "fps", 0, "Frame rate (overrides config)")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if runDataFile != "" {
		cfg.DataFile = runDataFile
	}
	if runFPS > 0 {
		cfg.FPS = runFPS
	}
	return tui.Run(cfg)
}
