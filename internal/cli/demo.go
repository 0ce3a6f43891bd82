package cli

import (
	"os"

	"github.com/mehtalab/fixlab/internal/demo"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay a scripted solve of the candle-box task",
	Long:  `Run a scripted pointer sequence through the candle-box task headlessly and print the transcript, a quick check that the engine and task setup behave.`,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	_, err := demo.Run(demo.CandleBoxScript(), os.Stdout)
	return err
}
