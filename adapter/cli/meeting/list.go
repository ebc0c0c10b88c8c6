package meeting

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
)

var (
	listContact int
	listFuture  bool
	listPast    bool
	listOn      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List meetings",
	Long: `List meetings. Future meetings of a contact are listed earliest
first; everything else is listed in the order it was added.

Examples:
  rolodex meeting list
  rolodex meeting list --contact 1 --future
  rolodex meeting list --contact 1 --past
  rolodex meeting list --on 2017-02-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		if listFuture && listPast {
			return errors.New("--future and --past are mutually exclusive")
		}
		if listOn != "" && listContact != 0 {
			return errors.New("--on cannot be combined with --contact")
		}

		out := cmd.OutOrStdout()
		manager := app.Manager
		now := manager.Now()

		if listOn != "" {
			day, err := cli.ParseDay(listOn, time.Local)
			if err != nil {
				return err
			}
			meetings, err := manager.GetMeetingListOn(day)
			if err != nil {
				return err
			}
			printMeetings(out, "Meetings on "+day.Format(cli.DateLayout), meetings, now)
			return nil
		}

		if listContact == 0 {
			if listFuture || listPast {
				return errors.New("--future and --past need --contact")
			}
			printMeetings(out, "Meetings", manager.Meetings(), now)
			return nil
		}

		contacts, err := resolveContacts(app, []int{listContact})
		if err != nil {
			return err
		}
		contact := contacts[0]

		if !listPast {
			future, err := manager.GetFutureMeetingList(contact)
			if err != nil {
				return err
			}
			printMeetings(out, "Future meetings", future, now)
		}
		if !listFuture {
			past, err := manager.GetPastMeetingListFor(contact)
			if err != nil {
				return err
			}
			printMeetings(out, "Past meetings", past, now)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listContact, "contact", 0, "contact id")
	listCmd.Flags().BoolVar(&listFuture, "future", false, "only future meetings (needs --contact)")
	listCmd.Flags().BoolVar(&listPast, "past", false, "only past meetings (needs --contact)")
	listCmd.Flags().StringVar(&listOn, "on", "", "only meetings on this day (YYYY-MM-DD)")
}
