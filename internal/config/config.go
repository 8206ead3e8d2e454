package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"imgsort/internal/errors"
	"imgsort/internal/shortcut"
	"imgsort/pkg/types"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Collision strategies for a destination that already holds the same name.
const (
	CollisionFail   = "fail"
	CollisionRename = "rename"
)

// Settings holds behavior switches for the sorting session.
type Settings struct {
	CreateDirs    bool   `yaml:"create_dirs"`    // Create missing target directories
	Collision     string `yaml:"collision"`      // Collision strategy: fail or rename
	ConfirmDelete bool   `yaml:"confirm_delete"` // Ask before deleting the current file
	WatchSource   bool   `yaml:"watch_source"`   // Notice changes to the source directory
	DefaultMode   string `yaml:"default_mode"`   // Initial routing mode: move or copy
}

// Config represents the application configuration structure.
type Config struct {
	Settings    Settings `yaml:"settings"`
	Directories struct {
		Source string `yaml:"source"` // Source directory opened at startup
	} `yaml:"directories"`
	// Shortcuts preset slot targets at startup, keyed by shortcut letter.
	Shortcuts map[string]string `yaml:"shortcuts"`
	Theme     struct {
		Name string `yaml:"name"` // Theme name (default, dark, light, ...)
	} `yaml:"theme"`
	Logging struct {
		Debug bool   `yaml:"debug"`
		JSON  bool   `yaml:"json"`
		File  string `yaml:"file"` // Log file; the terminal UI logs only here
	} `yaml:"logging"`
}

// DefaultPath returns $XDG_CONFIG_HOME/imgsort/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "imgsort", "config.yaml")
}

// DefaultLogPath returns the state-directory log file used by the terminal UI.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "imgsort", "imgsort.log")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(DefaultPath())
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal on top of the defaults so unset keys keep their default value
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Settings.CreateDirs = false
	cfg.Settings.Collision = CollisionFail
	cfg.Settings.ConfirmDelete = true
	cfg.Settings.WatchSource = true
	cfg.Settings.DefaultMode = "move"
	cfg.Shortcuts = map[string]string{}
	cfg.Theme.Name = "default"
	return cfg
}

// normalize upper-cases shortcut keys and lower-cases enum settings.
func (c *Config) normalize() {
	c.Settings.Collision = strings.ToLower(strings.TrimSpace(c.Settings.Collision))
	c.Settings.DefaultMode = strings.ToLower(strings.TrimSpace(c.Settings.DefaultMode))
	if c.Shortcuts == nil {
		c.Shortcuts = map[string]string{}
		return
	}
	norm := make(map[string]string, len(c.Shortcuts))
	for k, v := range c.Shortcuts {
		norm[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	c.Shortcuts = norm
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// SaveConfig writes cfg as YAML, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	switch c.Settings.Collision {
	case CollisionFail, CollisionRename:
	default:
		return errors.NewConfigError("invalid collision setting", c.Settings.Collision, errors.InvalidConfig, nil)
	}

	if _, err := types.ParseMode(c.Settings.DefaultMode); err != nil {
		return errors.NewConfigError("invalid default_mode setting", c.Settings.DefaultMode, errors.InvalidConfig, err)
	}

	for key, target := range c.Shortcuts {
		if !shortcut.IsKey(key) {
			return errors.NewConfigError("unknown shortcut key", key, errors.InvalidConfig, nil)
		}
		if strings.TrimSpace(target) == "" {
			return errors.NewConfigError("shortcut target is required", key, errors.InvalidConfig, nil)
		}
	}

	if _, ok := themes[c.Theme.Name]; c.Theme.Name != "" && !ok {
		return errors.NewConfigError("unknown theme", c.Theme.Name, errors.InvalidConfig, nil)
	}
	return nil
}

// Mode returns the configured initial routing mode.
func (c *Config) Mode() types.Mode {
	m, err := types.ParseMode(c.Settings.DefaultMode)
	if err != nil {
		return types.Move
	}
	return m
}

// ShortcutKeys returns preset keys in the fixed slot order.
func (c *Config) ShortcutKeys() []string {
	var out []string
	for _, k := range shortcut.Keys() {
		if _, ok := c.Shortcuts[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Palette is the set of colors a theme provides.
type Palette struct {
	Primary  string
	Success  string
	Warning  string
	Error    string
	Info     string
	Emphasis string
	Border   string
	// Rows colors the three shortcut keyboard rows.
	Rows [3]string
}

var themes = map[string]Palette{
	"default": {
		Primary: "213", Success: "114", Warning: "220", Error: "196",
		Info: "39", Emphasis: "212", Border: "213",
		Rows: [3]string{"183", "120", "153"}, // thistle, light green, light blue
	},
	"dark": {
		Primary: "105", Success: "78", Warning: "214", Error: "160",
		Info: "33", Emphasis: "147", Border: "105",
		Rows: [3]string{"97", "71", "67"},
	},
	"light": {
		Primary: "135", Success: "150", Warning: "222", Error: "210",
		Info: "117", Emphasis: "219", Border: "135",
		Rows: [3]string{"225", "194", "195"},
	},
	"monochrome": {
		Primary: "245", Success: "252", Warning: "241", Error: "232",
		Info: "248", Emphasis: "255", Border: "245",
		Rows: [3]string{"250", "247", "244"},
	},
}

// GetTheme returns a palette by name, falling back to the default theme.
func GetTheme(name string) Palette {
	if p, ok := themes[name]; ok {
		return p
	}
	return themes["default"]
}

// ListThemes returns the available theme names, sorted.
func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
