// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/zacharyhyde/listprofit/internal/funnel"
)

// StrategyDefaults holds the per-strategy input defaults. Rates are whole
// percents here, matching how they are entered; conversion to decimals
// happens in Scenario().
type StrategyDefaults struct {
	SendsPerWeek   float64 `mapstructure:"sends_per_week"`
	OpenPercent    float64 `mapstructure:"open_percent"`
	ClickPercent   float64 `mapstructure:"click_percent"`
	ConvertPercent float64 `mapstructure:"convert_percent"`
}

type Config struct {
	ListSize       int              `mapstructure:"list_size"`
	AvgOrderValue  float64          `mapstructure:"avg_order_value"`
	GrossMarginPct float64          `mapstructure:"gross_margin_percent"`
	Current        StrategyDefaults `mapstructure:"current"`
	New            StrategyDefaults `mapstructure:"new"`
	ExportDir      string           `mapstructure:"export_dir"`
	DebugLogging   bool             `mapstructure:"debug_logging"`
}

const (
	DefaultListSize       = 500_000
	DefaultAvgOrderValue  = 97.0
	DefaultGrossMarginPct = 60.0
	DefaultExportDir      = "exports"
)

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"list_size":               DefaultListSize,
		"avg_order_value":         DefaultAvgOrderValue,
		"gross_margin_percent":    DefaultGrossMarginPct,
		"export_dir":              DefaultExportDir,
		"current.sends_per_week":  2.0,
		"current.open_percent":    22.0,
		"current.click_percent":   6.0,
		"current.convert_percent": 3.0,

		"new.sends_per_week":  7.0,
		"new.open_percent":    20.0,
		"new.click_percent":   5.0,
		"new.convert_percent": 2.0,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// The calculator must run with zero setup: a missing config file means
	// defaults apply. A file that exists but fails to parse is an error.
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	loadEnvironmentVariables(v, &cfg)

	return &cfg, cfg.Validate()
}

// Validate checks the config against the input bounds. LoadConfig runs it
// automatically; callers that mutate the config afterwards (flag
// overrides) must run it again before building scenarios.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(cfg *Config) error {
	if cfg.ListSize < 1 {
		return errors.New("list_size must be at least 1")
	}
	if cfg.AvgOrderValue < 1.0 {
		return errors.New("avg_order_value must be at least 1.0")
	}
	if cfg.GrossMarginPct < 10 || cfg.GrossMarginPct > 100 {
		return errors.New("gross_margin_percent must be between 10 and 100")
	}
	if cfg.ExportDir == "" {
		return errors.New("export_dir must not be empty")
	}
	if err := validateStrategy("current", cfg.Current); err != nil {
		return err
	}
	return validateStrategy("new", cfg.New)
}

func validateStrategy(name string, s StrategyDefaults) error {
	if s.SendsPerWeek < 0 {
		return errors.New(name + ".sends_per_week must not be negative")
	}
	for _, pct := range []float64{s.OpenPercent, s.ClickPercent, s.ConvertPercent} {
		if pct < 1 || pct > 100 {
			return errors.New(name + " rate percents must be between 1 and 100")
		}
	}
	return nil
}

func loadEnvironmentVariables(v *viper.Viper, cfg *Config) {
	v.AutomaticEnv()
	v.SetEnvPrefix("LISTPROFIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if dir := v.GetString("EXPORT_DIR"); dir != "" {
		cfg.ExportDir = dir
	}
	if v.IsSet("DEBUG_LOGGING") {
		cfg.DebugLogging = v.GetBool("DEBUG_LOGGING")
	}
	if size := v.GetInt("LIST_SIZE"); size > 0 {
		cfg.ListSize = size
	}
}

// Scenario builds a funnel.Scenario from the config-level defaults,
// converting whole-percent rates into decimals.
func (c *Config) Scenario(name string, s StrategyDefaults) funnel.Scenario {
	return funnel.Scenario{
		Name:           name,
		ListSize:       c.ListSize,
		SendsPerWeek:   s.SendsPerWeek,
		OpenRate:       s.OpenPercent / 100,
		ClickRate:      s.ClickPercent / 100,
		ConversionRate: s.ConvertPercent / 100,
		AvgOrderValue:  c.AvgOrderValue,
		GrossMargin:    c.GrossMarginPct / 100,
	}
}

// CurrentScenario returns the default current-strategy scenario.
func (c *Config) CurrentScenario() funnel.Scenario {
	return c.Scenario("Current", c.Current)
}

// NewScenario returns the default new-strategy scenario.
func (c *Config) NewScenario() funnel.Scenario {
	return c.Scenario("New", c.New)
}
