package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

// ErrUnhealthy is returned by the status command when a required backend fails.
var ErrUnhealthy = errors.New("rolodex is unhealthy")

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the snapshot store and event publisher",
	Long: `Run health checks against the configured backends and print a
summary of the register.

Examples:
  rolodex status`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := RequireApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Contacts: %d\n", len(app.Manager.Contacts()))
		fmt.Fprintf(out, "Meetings: %d\n", len(app.Manager.Meetings()))

		if app.Health == nil {
			return nil
		}
		results := app.Health.Check(cmd.Context())
		for _, r := range results {
			fmt.Fprintf(out, "  %-16s %-9s %s\n", r.Name, r.Status, r.Message)
		}

		overall := observability.OverallStatus(results)
		fmt.Fprintf(out, "Status: %s\n", overall)
		if overall == observability.HealthStatusUnhealthy {
			return ErrUnhealthy
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
