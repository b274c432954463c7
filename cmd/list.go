package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the test units of each check",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			checkArgs, err := checkArgsFromConfig(args)
			if err != nil {
				return err
			}

			return workflow.List(commandContext(cmd), checkArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
