package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"sorter/internal/classify"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file locations.
type Paths struct {
	OutputDirName string `toml:"output_dir_name"`
	ScratchDir    string `toml:"scratch_dir"`
	LogDir        string `toml:"log_dir"`
	HistoryDB     string `toml:"history_db"`
}

// Sorting contains defaults for the sort run itself.
type Sorting struct {
	// Method pre-selects the sort method (1/2/3 or year/type/custom). Empty
	// means the CLI asks.
	Method string `toml:"method"`
	// RestoreArchiveTimes applies archived modification times to extracted
	// files so year sorting reflects when the file was made, not unpacked.
	RestoreArchiveTimes bool `toml:"restore_archive_times"`
}

// History contains configuration for the move journal.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Category is a user-defined category for the custom sort method.
type Category struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
}

// Config encapsulates all configuration values for sorter.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Sorting    Sorting    `toml:"sorting"`
	History    History    `toml:"history"`
	Logging    Logging    `toml:"logging"`
	Categories []Category `toml:"categories"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sorter/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/sorter/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("sorter.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the scratch directory and the directories that
// hold the log file and the history database. The output tree is created per
// run by the organizer.
func (c *Config) EnsureDirectories() error {
	if dir := strings.TrimSpace(c.Paths.ScratchDir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create scratch directory %q: %w", dir, err)
		}
	}
	if dir := strings.TrimSpace(c.Paths.LogDir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory %q: %w", dir, err)
		}
	}
	if c.History.Enabled && strings.TrimSpace(c.Paths.HistoryDB) != "" {
		dir := filepath.Dir(c.Paths.HistoryDB)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history directory %q: %w", dir, err)
		}
	}
	return nil
}

// SortMethod returns the configured method. The boolean is false when the
// config leaves the choice to the user.
func (c *Config) SortMethod() (classify.Method, bool, error) {
	if strings.TrimSpace(c.Sorting.Method) == "" {
		return classify.MethodUnknown, false, nil
	}
	method, err := classify.ParseMethod(c.Sorting.Method)
	if err != nil {
		return classify.MethodUnknown, false, err
	}
	return method, true, nil
}

// CategoryTable builds a classification table seeded with the configured
// user categories, in file order.
func (c *Config) CategoryTable() (*classify.Table, error) {
	table := classify.NewTable()
	for _, category := range c.Categories {
		if err := table.AddCustom(category.Name, category.Extensions); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// OutputDir returns the output base directory for a source root.
func (c *Config) OutputDir(sourceRoot string) string {
	return filepath.Join(sourceRoot, c.Paths.OutputDirName)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
