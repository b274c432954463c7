// Package cmd provides the root command and CLI setup for tplvet.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"tplvet.dev/pkg/tplvet/internal/adapter"
	"tplvet.dev/pkg/tplvet/internal/controller"
	"tplvet.dev/pkg/tplvet/internal/domain"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var watcher adapter.TemplateWatcher
var locator domain.Locator
var scanner domain.Scanner
var pipeline domain.Pipeline
var runner domain.Runner
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag listing directory substrings to skip.
var excludePatterns []string

var (
	suffixFlag     string
	parallelFlag   int
	checksFlag     []string
	staticDirsFlag []string
	verboseFlag    bool
	logFileFlag    string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	watcher = adapter.NewFSNotifyWatcher()
	locator = domain.NewLocator(fsAdapter)
	scanner = domain.NewScanner(fsAdapter)
	pipeline = domain.NewPipeline(fsAdapter, locator, scanner)
	runner = domain.NewRunner()
	workflow = domain.NewWorkflow(
		reportStore,
		watcher,
		ui,
		pipeline,
		runner,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...                recursively scan current directory
  - ./templates/...      recursively scan the templates directory
  - ./app ./accounts     scan multiple directories`

const rootLongDescription = `tplvet checks Django-style template trees against project conventions.
Every finding becomes a named test unit: form fields must render their
errors, forms must render non-field errors, resources must not use hardcoded
or relative links and static assets must exist.

` + pathPatternsHelp

const checkLongDescription = `Scan templates, synthesize test units and run them (default: current directory).

Exits with a non-zero status when any unit fails.

` + pathPatternsHelp

const listLongDescription = `List the test units that would run for the given paths, grouped by check.

` + pathPatternsHelp

const watchLongDescription = `Re-run the checks whenever a template under the given paths changes.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "tplvet",
		Short:        "Template convention checker",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
			reportConfigError(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for check reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "skip directories containing this substring (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&suffixFlag, suffixFlagName, viper.GetString(suffixConfigKey), "file name suffix identifying templates")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(suffixFlagName), suffixConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of templates scanned and units run in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.PersistentFlags().StringSliceVar(&checksFlag, checksFlagName, viper.GetStringSlice(runChecksConfigKey), "checks to run (field_errors, non_field_errors, resource_links, static_assets); default all")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(checksFlagName), runChecksConfigKey)

	cmd.PersistentFlags().StringArrayVar(&staticDirsFlag, staticDirFlagName, viper.GetStringSlice(staticDirsConfigKey), "directory searched for static assets (can be repeated); default every static/ under the paths")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(staticDirFlagName), staticDirsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (default from log.filename)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
