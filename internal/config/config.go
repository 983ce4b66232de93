package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/nextfit/internal/allocator"
	"github.com/firefly-engineering/nextfit/internal/display"
	"github.com/firefly-engineering/nextfit/internal/errors"
	"github.com/firefly-engineering/nextfit/internal/logging"
)

const (
	AppName        = "nextfit"
	ConfigFileName = "config.toml"
	ProfilesDir    = "profiles"
	EnvConfigDir   = "NEXTFIT_CONFIG_DIR"
)

// profileNameRegex validates profile names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
var profileNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// Config is the nextfit configuration file
type Config struct {
	Blocks  []int         `toml:"blocks"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig controls how block lines are rendered
type DisplayConfig struct {
	MaxOccupants int `toml:"max_occupants"`
}

// LogConfig mirrors the --verbose and --json flags
type LogConfig struct {
	Verbose bool `toml:"verbose"`
	JSON    bool `toml:"json"`
}

// Options converts the log section for logging.Setup
func (l LogConfig) Options() logging.Options {
	return logging.Options{Verbose: l.Verbose, JSON: l.JSON}
}

// Default returns the built-in configuration
func Default() *Config {
	blocks := make([]int, len(allocator.DefaultLayout))
	copy(blocks, allocator.DefaultLayout)
	return &Config{
		Blocks: blocks,
		Display: DisplayConfig{
			MaxOccupants: display.DefaultMaxOccupants,
		},
	}
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if err := allocator.ValidateLayout(c.Blocks); err != nil {
		return err
	}
	if c.Display.MaxOccupants < 1 {
		return errors.ConfigError(fmt.Sprintf("display.max_occupants must be at least 1 (got %d)", c.Display.MaxOccupants), nil)
	}
	return nil
}

// ValidateProfileName checks if a profile name is valid.
func ValidateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if !profileNameRegex.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}
	return nil
}

// DefaultConfigDir returns $NEXTFIT_CONFIG_DIR, or nextfit under the user
// config directory.
func DefaultConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(base, AppName)
}

// ProfilePath resolves <configDir>/profiles/<name>.toml. The result is
// guaranteed to stay inside the profiles directory, symlinks included.
func ProfilePath(configDir, name string) (string, error) {
	if err := ValidateProfileName(name); err != nil {
		return "", errors.ConfigError("invalid profile", err)
	}
	root := filepath.Join(configDir, ProfilesDir)
	path, err := securejoin.SecureJoin(root, name+".toml")
	if err != nil {
		return "", errors.ConfigError(fmt.Sprintf("failed to resolve profile %s", name), err)
	}
	return path, nil
}

// LoadFile reads a TOML config on top of the defaults
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError(fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config %s", path), err)
	}

	for _, key := range md.Undecoded() {
		logging.Warn("unknown config key", "key", key.String(), "file", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid config %s", path), err)
	}

	logging.Debug("loaded config", "file", path, "blocks", len(cfg.Blocks))
	return cfg, nil
}

// Options selects which configuration Load reads
type Options struct {
	// Path is an explicit config file; it must exist.
	Path string
	// Profile names a file under <ConfigDir>/profiles; it must exist.
	Profile string
	// ConfigDir overrides DefaultConfigDir.
	ConfigDir string
}

// Load resolves the configuration. An explicit path wins over a profile;
// without either, <ConfigDir>/config.toml is read when present and the
// defaults are used otherwise.
func Load(opts Options) (*Config, error) {
	if opts.Path != "" {
		return LoadFile(opts.Path)
	}

	dir := opts.ConfigDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	if opts.Profile != "" {
		path, err := ProfilePath(dir, opts.Profile)
		if err != nil {
			return nil, err
		}
		return LoadFile(path)
	}

	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		logging.Debug("no config file, using defaults", "file", path)
		return Default(), nil
	}
	return LoadFile(path)
}

// ListProfiles returns the profile names found under configDir
func ListProfiles(configDir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(configDir, ProfilesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")
		if ValidateProfileName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
