package main

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

const (
	// EnvPrefix is the prefix of environment variables that override configuration keys.
	EnvPrefix = "SORTEDLIST_"

	ConfigurationKeyConfig            = "config"
	ConfigurationKeyScript            = "script"
	ConfigurationKeyPrintEmptyMessage = "print.emptyMessage"
	ConfigurationKeyPrintFinal        = "print.final"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Config holds the settings of the command.
type Config struct {
	// Script is the path of a file holding the commands to run. Positional arguments are used if it is empty.
	Script string `koanf:"script"`
	// Logger configures the root logger.
	Logger LoggerConfig `koanf:"logger"`
	// Print configures how the list is displayed.
	Print PrintConfig `koanf:"print"`
}

// PrintConfig holds the settings of the list printer.
type PrintConfig struct {
	// EmptyMessage is the line printed instead of the values of an empty list.
	EmptyMessage string `koanf:"emptyMessage"`
	// Final appends a print command if the script does not end with one.
	Final bool `koanf:"final"`
}

// newFlagSet returns the unsorted flag set of the command with all defaults. Parsing stops at the first command so
// that negative command values are not taken for flags.
func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("sortedlist", flag.ContinueOnError)
	flagSet.SortFlags = false
	flagSet.SetInterspersed(false)

	flagSet.String(ConfigurationKeyConfig, "", "path to a JSON or YAML config file")
	flagSet.String(ConfigurationKeyScript, "", "path to a file holding the commands to run")
	flagSet.String(ConfigurationKeyPrintEmptyMessage, "List is Empty.", "line printed for an empty list")
	flagSet.Bool(ConfigurationKeyPrintFinal, true, "print the list after the last command")
	flagSet.String(ConfigurationKeyLoggerLevel, defaultLoggerConfig.Level, "the minimum enabled logging level")
	flagSet.String(ConfigurationKeyLoggerEncoding, defaultLoggerConfig.Encoding, "the logger's encoding (json or console)")
	flagSet.StringSlice(ConfigurationKeyLoggerOutputPaths, defaultLoggerConfig.OutputPaths, "the logger's output paths")
	flagSet.Bool(ConfigurationKeyLoggerDisableCaller, defaultLoggerConfig.DisableCaller, "stop annotating logs with the calling function")
	flagSet.Bool(ConfigurationKeyLoggerDisableStacktrace, defaultLoggerConfig.DisableStacktrace, "disable automatic stacktrace capturing")

	return flagSet
}

// loadConfig merges the config file, the environment and the parsed flags (in increasing priority) into a Config.
func loadConfig(flagSet *flag.FlagSet) (*Config, error) {
	config := koanf.New(".")

	configPath, err := flagSet.GetString(ConfigurationKeyConfig)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read config flag")
	}

	if configPath != "" {
		parser, parserErr := configParser(configPath)
		if parserErr != nil {
			return nil, parserErr
		}

		if err = config.Load(file.Provider(configPath), parser); err != nil {
			return nil, ierrors.Wrapf(err, "failed to load config file %s", configPath)
		}
	}

	if err = config.Load(env.Provider(EnvPrefix, ".", envKeyMapper(flagSet)), nil); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment variables")
	}

	if err = config.Load(posflag.Provider(flagSet, ".", config), nil); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	result := new(Config)
	if err = config.Unmarshal("", result); err != nil {
		return nil, ierrors.Wrap(err, "failed to unmarshal config")
	}

	return result, nil
}

// envKeyMapper maps SORTEDLIST_PRINT_EMPTYMESSAGE style variables to the camel cased key of the matching flag.
func envKeyMapper(flagSet *flag.FlagSet) func(string) string {
	keys := make(map[string]string)
	flagSet.VisitAll(func(f *flag.Flag) {
		keys[strings.ToLower(f.Name)] = f.Name
	})

	return func(envKey string) string {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(envKey, EnvPrefix)), "_", ".")
		if canonicalKey, exists := keys[key]; exists {
			return canonicalKey
		}

		return key
	}
}

func configParser(configPath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "extension of %s", configPath)
	}
}
