package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/wisdomwellbeing/resourcectl/internal/util"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "resourcectl", "config.yml")
}

// Load reads the config from disk (or env). A missing file is not an error;
// defaults apply.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads the config from path, or from RESOURCECTL_CONFIG / the
// default path when path is empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("source.catalogs", []string{})
	v.SetDefault("source.latency", "500ms")
	v.SetDefault("defaults.sort", "date-newest")
	v.SetDefault("defaults.category", "All")
	v.SetDefault("defaults.output_dir", defaultOutputDir())
	v.SetDefault("serve.host", "127.0.0.1")
	v.SetDefault("serve.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("RESOURCECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := path
	if configPath == "" {
		configPath = os.Getenv("RESOURCECTL_CONFIG")
	}
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		// Running without a config file is the common case.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Defaults.OutputDir = util.ExpandHome(cfg.Defaults.OutputDir)
	for i, c := range cfg.Source.Catalogs {
		cfg.Source.Catalogs[i] = util.ExpandHome(c)
	}

	return &cfg, nil
}

// Save writes the config to path, or to the default path when empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return util.WriteFileAtomic(path, buf.Bytes(), 0644)
}

func defaultOutputDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "resourcectl")
}
