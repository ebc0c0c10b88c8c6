package contact

import "github.com/spf13/cobra"

// Cmd is the contact command group.
var Cmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
	Long:  `Register contacts and look them up by name or id.`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
}
