package meeting

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
	"github.com/felixgeelhaar/rolodex/internal/contacts/infrastructure/calendar"
	"github.com/felixgeelhaar/rolodex/internal/shared/infrastructure/security"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all meetings as iCalendar",
	Long: `Write every meeting as a VEVENT to an .ics file or to stdout.

Examples:
  rolodex meeting export
  rolodex meeting export --out meetings.ics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := calendar.Export(&buf, app.Manager.Meetings(), app.Manager.Now()); err != nil {
			return err
		}

		if exportOut == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}

		path, err := security.ValidateFilePath(exportOut)
		if err != nil {
			return err
		}
		if err := security.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write calendar: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d meetings to %s\n", len(app.Manager.Meetings()), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout")
}
