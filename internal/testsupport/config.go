package testsupport

import (
	"path/filepath"
	"testing"

	"sorter/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ScratchDir = filepath.Join(base, "scratch")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.HistoryDB = filepath.Join(base, "state", "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMethod pre-selects the sort method.
func WithMethod(method string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sorting.Method = method
	}
}

// WithCategory appends a custom category.
func WithCategory(name string, extensions ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Categories = append(b.cfg.Categories, config.Category{Name: name, Extensions: extensions})
	}
}

// WithoutHistory disables the journal.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithoutArchiveTimes leaves extracted files stamped with the extraction time.
func WithoutArchiveTimes() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sorting.RestoreArchiveTimes = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
