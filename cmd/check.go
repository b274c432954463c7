package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check templates against the conventions",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			checkArgs, err := checkArgsFromConfig(args)
			if err != nil {
				return err
			}

			checkArgs.Reports = m.Path(viper.GetString(outputFlagName))

			return workflow.Check(commandContext(cmd), checkArgs)
		},
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
