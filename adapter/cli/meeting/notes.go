package meeting

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
)

var notesCmd = &cobra.Command{
	Use:   "notes [meeting-id] [notes]",
	Short: "Replace the notes of a past meeting",
	Long: `Replace the notes of a meeting that already took place. Meetings
still in the future cannot carry notes.

Examples:
  rolodex meeting notes 3 "agreed on the budget"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		id, err := cli.ParseID(args[0])
		if err != nil {
			return err
		}

		if _, err := app.Manager.AddMeetingNotes(id, args[1]); err != nil {
			return err
		}
		if err := app.Flush(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Notes saved for meeting #%d.\n", id)
		return nil
	},
}
