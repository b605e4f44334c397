package config

import "github.com/kelseyhightower/envconfig"

// Config holds application settings. Defaults can be overridden through
// PLOTTER_* environment variables (see the envconfig tags).
type Config struct {
	// StorePath is the binary star catalog consumed at startup.
	StorePath string `envconfig:"STORE_PATH"`
	// AliasDBPath is the SQLite database holding jump-point aliases.
	AliasDBPath string `envconfig:"ALIAS_DB_PATH"`
	// LegacyAliasPath is the pre-SQLite jumppoints.json location, imported
	// once if present.
	LegacyAliasPath string `envconfig:"LEGACY_ALIAS_PATH"`
	// OutputPath receives the route summary on success.
	OutputPath string `envconfig:"OUTPUT_PATH"`
	// MaxRange is the default base jump range in light-years when the user
	// does not supply one.
	MaxRange float32 `envconfig:"MAX_RANGE"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		StorePath:       "data/aether.pkl",
		AliasDBPath:     "data/plotter.db",
		LegacyAliasPath: "jumppoints.json",
		OutputPath:      "route.txt",
		MaxRange:        30,
	}
}

// Load returns the defaults overlaid with any PLOTTER_* environment
// variables.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process("plotter", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
