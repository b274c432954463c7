package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tplvet.dev/pkg/tplvet/internal/domain"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	var baseline string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved check report",
		Long: `View the report saved in the reports directory.

With --baseline, print a unified diff of the failing units between the
baseline report and the saved one.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))

			return workflow.View(commandContext(cmd), domain.ViewArgs{
				Reports:  reportsPath,
				Baseline: m.Path(baseline),
			})
		},
	}

	cmd.Flags().StringVar(&baseline, baselineFlagName, "", "report file or directory to diff the failing units against")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
