package providers

import (
	"chatsplit/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
)

const AppName = "chatsplit"

// flagBindings maps config keys onto the command-line flags that override them.
var flagBindings = map[string]string{
	"input.path":         "input",
	"input.conversation": "conversation",
	"output.dir":         "output",
	"output.compression": "compression",
	"grouping.timezone":  "tz",
	"logger.level":       "log-level",
	"metrics.textfile":   "metrics-textfile",
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("input.conversation", 0)
	v.SetDefault("output.dir", "output_by_date")
	v.SetDefault("output.compression", "none")
	v.SetDefault("output.indent", "    ")
	v.SetDefault("output.fileMode", 0644)
	v.SetDefault("grouping.timezone", "Local")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)

	v.BindEnv("input.path", "CHATSPLIT_INPUT")
	v.BindEnv("output.dir", "CHATSPLIT_OUTPUT_DIR")
	v.BindEnv("output.compression", "CHATSPLIT_COMPRESSION")
	v.BindEnv("grouping.timezone", "CHATSPLIT_TIMEZONE")
	v.BindEnv("logger.level", "CHATSPLIT_LOG_LEVEL")
	v.BindEnv("metrics.textfile", "CHATSPLIT_METRICS_TEXTFILE")

	if flags.FlagSet != nil {
		for key, name := range flagBindings {
			if f := flags.FlagSet.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.Command = flags.Command
	if conf.Metrics.Textfile != "" {
		conf.Metrics.Enabled = true
	}

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}
