package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tplvet.dev/pkg/tplvet/internal/domain"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-run the checks when templates change",
		Long:  watchLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			checkArgs, err := checkArgsFromConfig(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{
				CheckArgs: checkArgs,
				Debounce:  viper.GetDuration(debounceConfigKey),
			})
		},
	}

	cmd.Flags().Duration(debounceFlagName, defaultDebounce, "quiet period before a burst of changes triggers a run")
	bindFlagToConfig(cmd.Flags().Lookup(debounceFlagName), debounceConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
