package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mehtalab/fixlab/internal/analysis"
	"github.com/mehtalab/fixlab/internal/config"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the collected data",
	Long:  `Aggregate the data file into per-task solve rates, durations, and condition splits.`,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	summaries, err := analysis.Summarize(cfg.DataFile)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tRUNS\tPARTICIPANTS\tSOLVED\tMEAN TIME\tMEAN WRONG DROPS\tCONTROL\tTREATMENT")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%.1fs\t%.1f\t%d/%d\t%d/%d\n",
			s.TaskName,
			s.Runs,
			s.Participants(),
			s.SolveRate()*100,
			s.MeanDuration,
			s.MeanWrongDrops,
			s.ControlStats.Solved, s.ControlStats.Runs,
			s.TreatmentStats.Solved, s.TreatmentStats.Runs,
		)
	}
	return w.Flush()
}
