package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sorter/internal/config"
	"sorter/internal/services"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckSourceDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	abs, err := CheckSourceDir(dir)
	if err != nil {
		t.Fatalf("expected valid source, got %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Fatalf("expected absolute path, got %q", abs)
	}

	for _, bad := range []string{"", "   ", filepath.Join(dir, "missing"), file} {
		_, err := CheckSourceDir(bad)
		if !errors.Is(err, services.ErrInvalidSourcePath) {
			t.Fatalf("CheckSourceDir(%q) = %v, want ErrInvalidSourcePath", bad, err)
		}
	}
}

func TestCheckSourceDirResolvesRelative(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "inbox"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	abs, err := CheckSourceDir("inbox")
	if err != nil {
		t.Fatalf("CheckSourceDir returned error: %v", err)
	}
	if filepath.Base(abs) != "inbox" || !filepath.IsAbs(abs) {
		t.Fatalf("unexpected resolved path %q", abs)
	}
}

func TestRunAllIncludesConfiguredLocations(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ScratchDir = filepath.Join(base, "scratch")
	cfg.Paths.HistoryDB = filepath.Join(base, "db", "history.db")

	results := RunAll(&cfg, base)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	failed := Failures(results)
	if len(failed) != 2 {
		t.Fatalf("expected scratch and history checks to fail, got %+v", failed)
	}

	cfg.History.Enabled = false
	cfg.Paths.ScratchDir = ""
	if got := RunAll(&cfg, base); len(got) != 1 || !got[0].Passed {
		t.Fatalf("unexpected results: %+v", got)
	}
	if got := RunAll(&cfg, ""); len(got) != 0 {
		t.Fatalf("expected no checks without a source, got %+v", got)
	}
}
