package config

import (
	"time"

	"github.com/wisdomwellbeing/resourcectl/internal/resource"
	"github.com/wisdomwellbeing/resourcectl/internal/view"
)

// Config is the top-level resourcectl configuration.
type Config struct {
	Source   SourceConfig   `mapstructure:"source" yaml:"source"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	Serve    ServeConfig    `mapstructure:"serve" yaml:"serve"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// SourceConfig selects where resources come from.
type SourceConfig struct {
	Catalogs []string      `mapstructure:"catalogs" yaml:"catalogs,omitempty"` // YAML files; empty = built-in catalog
	Latency  time.Duration `mapstructure:"latency" yaml:"latency"`             // simulated fetch delay
}

// DefaultsConfig holds the initial browser state and output locations.
type DefaultsConfig struct {
	Sort      string `mapstructure:"sort" yaml:"sort"`
	Category  string `mapstructure:"category" yaml:"category"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// ServeConfig holds HTTP listener settings.
type ServeConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // console or json
}

// EffectiveSort returns the configured default sort, falling back to
// resource.DefaultSort when unset or invalid.
func (d DefaultsConfig) EffectiveSort() resource.SortOption {
	opt, err := resource.ParseSortOption(d.Sort)
	if err != nil {
		return resource.DefaultSort
	}
	return opt
}

// EffectiveCategory returns the configured default selection, falling back
// to All when unset or invalid.
func (d DefaultsConfig) EffectiveCategory() resource.Category {
	c, err := resource.ParseSelection(d.Category)
	if err != nil {
		return resource.All
	}
	return c
}

// UsesBuiltin reports whether the embedded catalog is the data source.
func (s SourceConfig) UsesBuiltin() bool {
	return len(s.Catalogs) == 0
}

// DefaultView returns the options a browser starts with.
func (c *Config) DefaultView() view.Options {
	return view.Options{
		Category: c.Defaults.EffectiveCategory(),
		Sort:     c.Defaults.EffectiveSort(),
	}
}
