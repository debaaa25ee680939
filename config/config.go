package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "METEOGRAM"

type Config struct {
	Yr       Yr       `yaml:"yr"`
	Log      Log      `yaml:"log"`
	Metrics  Metrics  `yaml:"metrics"`
	Defaults Defaults `yaml:"defaults"`
}

type Yr struct {
	BaseURL   string        `yaml:"baseURL"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Metrics struct {
	// Textfile is where the metrics are written on exit, empty disables it.
	Textfile string `yaml:"textfile"`
}

// Defaults are the flag defaults of the fetch command.
type Defaults struct {
	Dark        bool `yaml:"dark"`
	Crop        bool `yaml:"crop"`
	Transparent bool `yaml:"transparent"`
	UnhideDark  bool `yaml:"unhideDark"`
}

// Load decodes the yaml defaults in raw and applies METEOGRAM_* environment
// overrides, reading a .env file in the working directory first if present.
// METEOGRAM_YR_BASE_URL overrides yr.baseURL, METEOGRAM_DEFAULTS_UNHIDE_DARK
// overrides defaults.unhideDark and so on.
func Load(raw []byte) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("yr.base_url", cfg.Yr.BaseURL)
	v.SetDefault("yr.timeout", cfg.Yr.Timeout)
	v.SetDefault("yr.user_agent", cfg.Yr.UserAgent)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("metrics.textfile", cfg.Metrics.Textfile)
	v.SetDefault("defaults.dark", cfg.Defaults.Dark)
	v.SetDefault("defaults.crop", cfg.Defaults.Crop)
	v.SetDefault("defaults.transparent", cfg.Defaults.Transparent)
	v.SetDefault("defaults.unhide_dark", cfg.Defaults.UnhideDark)

	cfg.Yr.BaseURL = v.GetString("yr.base_url")
	cfg.Yr.Timeout = v.GetDuration("yr.timeout")
	cfg.Yr.UserAgent = v.GetString("yr.user_agent")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Metrics.Textfile = v.GetString("metrics.textfile")
	cfg.Defaults.Dark = v.GetBool("defaults.dark")
	cfg.Defaults.Crop = v.GetBool("defaults.crop")
	cfg.Defaults.Transparent = v.GetBool("defaults.transparent")
	cfg.Defaults.UnhideDark = v.GetBool("defaults.unhide_dark")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.Yr.BaseURL)
	if err != nil {
		return fmt.Errorf("yr.baseURL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("yr.baseURL: %q is not an absolute URL", c.Yr.BaseURL)
	}
	if c.Yr.Timeout <= 0 {
		return errors.New("yr.timeout must be positive")
	}

	return nil
}
