package meeting

import "github.com/spf13/cobra"

// Cmd is the meeting command group.
var Cmd = &cobra.Command{
	Use:   "meeting",
	Short: "Manage meetings",
	Long: `Schedule future meetings, record past ones, add notes and
query meetings by id, contact or day.`,
}

func init() {
	Cmd.AddCommand(scheduleCmd)
	Cmd.AddCommand(recordCmd)
	Cmd.AddCommand(notesCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(exportCmd)
}
