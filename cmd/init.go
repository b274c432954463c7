package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tplvet.dev/pkg/tplvet/internal/domain"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

// exclusionKeys are written to a new config file even when empty, so the
// lists can be filled in by hand.
var exclusionKeys = []string{
	domain.UnwantedFieldsKey,
	domain.UnwantedAssetsKey,
	domain.ExcludePathsKey,
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default tplvet.yaml configuration file",
		Long: `Create a tplvet.yaml in the current working directory populated with the
current CLI defaults and empty exclusion lists so it can be edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			cfg := viper.New()
			if err := cfg.MergeConfigMap(viper.AllSettings()); err != nil {
				return fmt.Errorf("failed to collect settings: %w", err)
			}

			for _, key := range exclusionKeys {
				cfg.SetDefault(key, []string{})
			}

			if err := cfg.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s\n", targetPath)
			cmd.Printf("exclusion keys: %s\n", strings.Join(exclusionKeys, ", "))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
