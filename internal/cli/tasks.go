package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mehtalab/fixlab/internal/task"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the task battery",
	Long:  `List every task in the battery with its time limit and the milestone flags it records.`,
	RunE:  runTasks,
}

func runTasks(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tTIME LIMIT\tFLAGS")

	for _, d := range task.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			d.Name,
			d.Title,
			d.Timeout,
			strings.Join(d.Flags, ", "),
		)
	}

	return w.Flush()
}
