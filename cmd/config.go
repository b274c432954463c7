package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"tplvet.dev/pkg/tplvet/internal/domain"
	m "tplvet.dev/pkg/tplvet/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "tplvet"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	suffixFlagName      = "suffix"
	runParallelFlagName = "parallel"
	checksFlagName      = "checks"
	staticDirFlagName   = "static-dir"
	baselineFlagName    = "baseline"
	debounceFlagName    = "debounce"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	runParallelConfigKey = "run.parallel"
	runChecksConfigKey   = "run.checks"
	excludeConfigKey     = domain.ExcludePathsKey
	suffixConfigKey      = "templates.suffix"
	staticDirsConfigKey  = "static_assets.dirs"
	debounceConfigKey    = "watch.debounce"

	defaultReportsDir  = ".tplvet-reports"
	defaultRunParallel = 4
	defaultDebounce    = 300 * time.Millisecond

	envPrefix = "TPLVET"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".tplvet.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds the error of reading the config file at start up.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runChecksConfigKey, []string{})
	viper.SetDefault(excludeConfigKey, domain.DefaultExcludedPaths)
	viper.SetDefault(suffixConfigKey, domain.DefaultTemplateSuffix)
	viper.SetDefault(staticDirsConfigKey, []string{})
	viper.SetDefault(debounceConfigKey, defaultDebounce.String())

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configReadErr = readConfig()
}

// readConfig loads tplvet.yaml. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", configFileName, err)
}

// reportConfigError surfaces a config file that exists but could not be read.
// Its exclusions are not applied, so the run would otherwise silently report
// excluded subjects.
func reportConfigError(cmd *cobra.Command) {
	if configReadErr == nil {
		return
	}

	slog.Warn("configuration file ignored", "error", configReadErr)
	cmd.PrintErrln("warning:", configReadErr, "(defaults are used)")
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// checkArgsFromConfig assembles the arguments shared by check, list and watch
// from flags, environment and the config file.
func checkArgsFromConfig(paths []string) (domain.CheckArgs, error) {
	groups, err := parseChecks(viper.GetStringSlice(runChecksConfigKey))
	if err != nil {
		return domain.CheckArgs{}, err
	}

	exclusions := domain.LoadExclusions(viper.GetViper())

	return domain.CheckArgs{
		Paths:      parsePaths(paths),
		Exclusions: exclusions,
		Suffix:     viper.GetString(suffixConfigKey),
		Groups:     groups,
		Threads:    viper.GetInt(runParallelConfigKey),
		StaticDirs: parsePaths(domain.ParseList(viper.Get(staticDirsConfigKey))),
	}, nil
}

func parseChecks(names []string) ([]m.Group, error) {
	groups := make([]m.Group, 0, len(names))

	for _, name := range domain.ParseList(strings.Join(names, ",")) {
		group, err := m.ParseGroup(name)
		if err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	return groups, nil
}
