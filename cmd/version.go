package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the config file version and the checks this build runs.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if ok && info.Main.Version != "" {
				cmd.Println("tplvet version\t", info.Main.Version)
				cmd.Println("go version\t", info.GoVersion)
			} else {
				cmd.Println("tplvet version\t unknown")
			}

			cmd.Println("config version\t", currentConfigVersion)
			cmd.Println("checks\t\t", strings.Join(checkNames(), ", "))
		},
	}
}

func checkNames() []string {
	groups := m.AllGroups()

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, string(g))
	}

	return names
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
