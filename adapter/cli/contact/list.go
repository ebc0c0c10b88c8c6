package contact

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
)

var (
	listName string
	listIDs  []int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long: `List contacts in the order they were added. Names match exactly
and are case-sensitive.

Examples:
  rolodex contact list
  rolodex contact list --name "Ada Lovelace"
  rolodex contact list --id 1,3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		var contacts []domain.Contact
		if listIDs != nil {
			contacts, err = app.Manager.GetContactsByID(listIDs...)
			if err != nil {
				return err
			}
			contacts = filterByName(contacts, listName)
		} else {
			contacts = app.Manager.GetContactsByName(listName)
		}

		out := cmd.OutOrStdout()
		if len(contacts) == 0 {
			fmt.Fprintln(out, "No contacts found.")
			return nil
		}

		fmt.Fprintf(out, "Contacts (%d):\n", len(contacts))
		for _, c := range contacts {
			fmt.Fprintf(out, "  #%d %s\n", c.ID(), c.Name())
			if c.Notes() != "" {
				fmt.Fprintf(out, "    Notes: %s\n", c.Notes())
			}
		}
		return nil
	},
}

func filterByName(contacts []domain.Contact, name string) []domain.Contact {
	if name == "" {
		return contacts
	}
	kept := contacts[:0]
	for _, c := range contacts {
		if c.Name() == name {
			kept = append(kept, c)
		}
	}
	return kept
}

func init() {
	listCmd.Flags().StringVar(&listName, "name", "", "exact contact name")
	listCmd.Flags().IntSliceVar(&listIDs, "id", nil, "contact ids, comma separated")
}
