package meeting

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
)

var (
	showFuture bool
	showPast   bool
)

var showCmd = &cobra.Command{
	Use:   "show [meeting-id]",
	Short: "Show a meeting",
	Long: `Show one meeting. With --future or --past the command fails when
the meeting is on the other side of now.

Examples:
  rolodex meeting show 2
  rolodex meeting show 2 --future`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}
		if showFuture && showPast {
			return errors.New("--future and --past are mutually exclusive")
		}

		id, err := cli.ParseID(args[0])
		if err != nil {
			return err
		}

		var m *domain.Meeting
		switch {
		case showFuture:
			m, err = app.Manager.GetFutureMeeting(id)
		case showPast:
			m, err = app.Manager.GetPastMeeting(id)
		default:
			m = app.Manager.GetMeeting(id)
		}
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("meeting #%d not found", id)
		}

		printMeeting(cmd.OutOrStdout(), m, app.Manager.Now())
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showFuture, "future", false, "require a future meeting")
	showCmd.Flags().BoolVar(&showPast, "past", false, "require a past meeting")
}
