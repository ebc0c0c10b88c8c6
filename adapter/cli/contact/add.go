package contact

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
)

var addNotes string

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new contact",
	Long: `Register a new contact. Every contact needs notes.

Examples:
  rolodex contact add "Ada Lovelace" --notes "analytical engine"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		id, err := app.Manager.AddNewContact(args[0], addNotes)
		if err != nil {
			return err
		}
		if err := app.Flush(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Contact added: #%d %s\n", id, args[0])
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "notes about the contact (required)")
}
