package anubis

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ---------------------------------------------------------------------------
// Launcher configuration (TOML-based)
// ---------------------------------------------------------------------------

// Config is the top-level TOML structure.
type Config struct {
	Grid    gridSettings    `toml:"grid"`
	Theme   themeSettings   `toml:"theme"`
	Library librarySettings `toml:"library"`
}

type gridSettings struct {
	Columns     int `toml:"columns"`
	VisibleRows int `toml:"visible_rows"`
	Padding     int `toml:"padding"`
}

type themeSettings struct {
	Accent string `toml:"accent"` // hex color for the focus highlight
}

type librarySettings struct {
	Path string `toml:"path"` // sqlite database path; empty = default location
}

const defaultConfigTOML = `# Anubis launcher configuration

[grid]
columns = 7
visible_rows = 3
padding = 100

[theme]
accent = "#b4befe"

[library]
path = ""
`

// configDir returns the directory for launcher config files, using
// XDG_CONFIG_HOME or falling back to the platform default.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "anubis"), nil
}

// ConfigPath returns the full path to the config.toml file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the launcher config, writing the default file first if
// none exists yet.
func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return Config{}, fmt.Errorf("create config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); err != nil {
			return Config{}, fmt.Errorf("write default config: %w", err)
		}
	}
	return LoadConfigFile(path)
}

// LoadConfigFile reads and validates a config file at an explicit path.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults(md)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes config from TOML source text.
func ParseConfig(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults(md)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills fields absent from the file. Keys the file actually
// sets are kept verbatim, so an explicit padding = 0 survives while an
// explicit columns = 0 reaches Validate and fails there.
func (c *Config) applyDefaults(md toml.MetaData) {
	if !md.IsDefined("grid", "columns") {
		c.Grid.Columns = DefaultColumns
	}
	if !md.IsDefined("grid", "visible_rows") {
		c.Grid.VisibleRows = DefaultVisibleRows
	}
	if !md.IsDefined("grid", "padding") {
		c.Grid.Padding = DefaultPadding
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = "#b4befe"
	}
}

// Validate rejects configurations the layout layer cannot tolerate.
func (c Config) Validate() error {
	return c.GridConfig().Validate()
}

// GridConfig converts the grid section into the validated layout policy
// configuration.
func (c Config) GridConfig() GridConfig {
	return GridConfig{
		Columns:     c.Grid.Columns,
		VisibleRows: c.Grid.VisibleRows,
		Padding:     c.Grid.Padding,
	}
}

// LibraryPath resolves the sqlite database location, defaulting to the
// config directory.
func (c Config) LibraryPath() (string, error) {
	if c.Library.Path != "" {
		return c.Library.Path, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "library.db"), nil
}
