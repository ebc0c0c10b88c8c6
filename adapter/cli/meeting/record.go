package meeting

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
)

var (
	recordContacts []int
	recordAt       string
	recordNotes    string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a meeting that already happened",
	Long: `Record a past meeting together with its notes.

Examples:
  rolodex meeting record --contact 1 --at 2017-01-10T09:30 --notes "kick-off"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		at, err := cli.ParseTime(recordAt, time.Local)
		if err != nil {
			return err
		}
		contacts, err := resolveContacts(app, recordContacts)
		if err != nil {
			return err
		}

		id, err := app.Manager.AddNewPastMeeting(contacts, at, recordNotes)
		if err != nil {
			return err
		}
		if err := app.Flush(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Meeting recorded: #%d at %s\n", id, at.Format(time.RFC1123))
		return nil
	},
}

func init() {
	recordCmd.Flags().IntSliceVarP(&recordContacts, "contact", "c", nil, "participant contact id (repeatable)")
	recordCmd.Flags().StringVar(&recordAt, "at", "", "meeting time, e.g. 2017-01-10T09:30")
	recordCmd.Flags().StringVarP(&recordNotes, "notes", "n", "", "what was discussed")
}
