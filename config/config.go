// Package config provides unified configuration loading for stockmesh. It
// supports loading from YAML files and environment variables, and carries the
// seed product catalog the simulation starts from.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/stockmesh/core"
)

// Config contains all stockmesh configuration settings.
type Config struct {
	// TimeUnit is the duration of one simulation time unit.
	TimeUnit time.Duration `json:"time_unit" yaml:"time_unit"`

	// RestockDelayUnits is the delay, in time units, before a triggered
	// restock or reorder fires.
	RestockDelayUnits int `json:"restock_delay_units" yaml:"restock_delay_units"`

	// SupplierDelayUnits is the supplier lead time, in time units, before a
	// delivery fires.
	SupplierDelayUnits int `json:"supplier_delay_units" yaml:"supplier_delay_units"`

	// LogCapacity caps the activity log.
	LogCapacity int `json:"log_capacity" yaml:"log_capacity"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Catalog is the seed product set. Empty means DefaultCatalog().
	Catalog []core.Product `json:"catalog,omitempty" yaml:"catalog,omitempty"`
}

// LoggingConfig configures stockmesh's operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "debug", "info" (default), "warn" or
	// "error".
	Level string `json:"level" yaml:"level"`

	// Format selects the handler: "json" (default) or "text".
	Format string `json:"format" yaml:"format"`
}

// Default returns the configuration matching the original simulation's
// timings: one second per time unit, restock after one unit, delivery after
// three, a 100 entry activity log and the default catalog.
func Default() Config {
	return Config{
		TimeUnit:           time.Second,
		RestockDelayUnits:  1,
		SupplierDelayUnits: 3,
		LogCapacity:        100,
		Logging:            LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load builds a Config from defaults, an optional YAML file and environment
// overrides, in that order of increasing precedence. An empty path skips the
// file step.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.TimeUnit <= 0 {
		return fmt.Errorf("time_unit must be positive, got %s", c.TimeUnit)
	}
	if c.RestockDelayUnits < 0 || c.SupplierDelayUnits < 0 {
		return fmt.Errorf("delay units must not be negative")
	}
	if c.LogCapacity <= 0 {
		return fmt.Errorf("log_capacity must be positive, got %d", c.LogCapacity)
	}
	for _, p := range c.Catalog {
		if p.StoreStock < 0 || p.WarehouseStock < 0 {
			return fmt.Errorf("product %d: stock must not be negative", p.ID)
		}
		if p.Price <= 0 {
			return fmt.Errorf("product %d: price must be positive", p.ID)
		}
		if p.Threshold <= 0 || p.SupplierQuantity <= 0 {
			return fmt.Errorf("product %d: threshold and supplier_quantity must be positive", p.ID)
		}
	}
	return nil
}

// Products returns the seed catalog, falling back to DefaultCatalog when the
// configuration carries none.
func (c Config) Products() []core.Product {
	if len(c.Catalog) == 0 {
		return DefaultCatalog()
	}
	out := make([]core.Product, len(c.Catalog))
	copy(out, c.Catalog)
	return out
}

// applyEnv overlays STOCKMESH_* environment variables onto the config.
func applyEnv(c *Config) {
	if v := os.Getenv("STOCKMESH_TIME_UNIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.TimeUnit = d
		}
	}
	if v := os.Getenv("STOCKMESH_LOG_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LogCapacity = n
		}
	}
	if v := os.Getenv("STOCKMESH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("STOCKMESH_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}
