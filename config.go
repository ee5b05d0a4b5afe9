package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	_configName = "advent"
	_envPrefix  = "ADVENT"

	_defaultInputDir     = "inputs"
	_defaultFormat       = _formatText
	_defaultDialStart    = 50
	_defaultDialSize     = 100
	_defaultBatteryShort = 2
	_defaultBatteryLong  = 12
	_defaultGridCrowded  = 4

	// 10^18 is the largest power of ten an int64 holds.
	_maxDigits = 18
)

type Config struct {
	InputDir string `mapstructure:"input_dir" yaml:"input_dir"`
	Format   string `mapstructure:"format" yaml:"format"`
	Verify   bool   `mapstructure:"verify" yaml:"verify"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose"`

	Dial struct {
		Start int64 `mapstructure:"start" yaml:"start"`
		Size  int64 `mapstructure:"size" yaml:"size"`
	} `mapstructure:"dial" yaml:"dial"`

	Battery struct {
		Short int `mapstructure:"short" yaml:"short"`
		Long  int `mapstructure:"long" yaml:"long"`
	} `mapstructure:"battery" yaml:"battery"`

	Grid struct {
		Crowded int `mapstructure:"crowded" yaml:"crowded"`
	} `mapstructure:"grid" yaml:"grid"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("input_dir", _defaultInputDir)
	v.SetDefault("format", _defaultFormat)
	v.SetDefault("verify", false)
	v.SetDefault("verbose", false)
	v.SetDefault("dial.start", _defaultDialStart)
	v.SetDefault("dial.size", _defaultDialSize)
	v.SetDefault("battery.short", _defaultBatteryShort)
	v.SetDefault("battery.long", _defaultBatteryLong)
	v.SetDefault("grid.crowded", _defaultGridCrowded)

	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if any, and decodes v into a Config.
// An explicit file must exist; the default search path may come up empty.
func loadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(_configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", _configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() *Config {
	cfg, err := loadConfig(newViper(), "")
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch {
	case c.Dial.Size <= 0:
		return errors.Errorf("config: dial.size must be positive, got %d", c.Dial.Size)
	case c.Dial.Start < 0 || c.Dial.Start >= c.Dial.Size:
		return errors.Errorf("config: dial.start must be in [0,%d), got %d", c.Dial.Size, c.Dial.Start)
	case c.Battery.Short < 1 || c.Battery.Short > _maxDigits:
		return errors.Errorf("config: battery.short must be in [1,%d], got %d", _maxDigits, c.Battery.Short)
	case c.Battery.Long < 1 || c.Battery.Long > _maxDigits:
		return errors.Errorf("config: battery.long must be in [1,%d], got %d", _maxDigits, c.Battery.Long)
	case c.Grid.Crowded < 1:
		return errors.Errorf("config: grid.crowded must be positive, got %d", c.Grid.Crowded)
	}
	switch c.Format {
	case _formatText, _formatYAML:
	default:
		return errors.Errorf("config: unknown format %q", c.Format)
	}
	return nil
}
