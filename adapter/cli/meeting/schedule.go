package meeting

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
)

var (
	scheduleContacts []int
	scheduleAt       string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a future meeting",
	Long: `Schedule a meeting with registered contacts. The time must be in
the future.

Examples:
  rolodex meeting schedule --contact 1 --contact 2 --at 2030-01-02T10:00`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		at, err := cli.ParseTime(scheduleAt, time.Local)
		if err != nil {
			return err
		}
		contacts, err := resolveContacts(app, scheduleContacts)
		if err != nil {
			return err
		}

		id, err := app.Manager.AddFutureMeeting(contacts, at)
		if err != nil {
			return err
		}
		if err := app.Flush(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Meeting scheduled: #%d at %s\n", id, at.Format(time.RFC1123))
		return nil
	},
}

func init() {
	scheduleCmd.Flags().IntSliceVarP(&scheduleContacts, "contact", "c", nil, "participant contact id (repeatable)")
	scheduleCmd.Flags().StringVar(&scheduleAt, "at", "", "meeting time, e.g. 2030-01-02T10:00")
}
