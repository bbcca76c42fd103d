package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sorter/internal/testsupport"
)

func TestHistoryListsRun(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteContent(t, filepath.Join(env.source, "a.log"), []byte("log"))

	if _, _, err := runCLI(t, []string{"-s", env.source, "-m", "2"}, env.configPath, ""); err != nil {
		t.Fatalf("sort: %v", err)
	}

	out, _, err := runCLI(t, []string{"history"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "moved")
	requireContains(t, out, "Logs")
	requireContains(t, out, "a.log")

	out, _, err = runCLI(t, []string{"history", "--run", "no-such-run"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history --run: %v", err)
	}
	requireContains(t, out, "No history entries")
}

func TestHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())

	out, _, err := runCLI(t, []string{"history"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "History is disabled")
	if _, err := os.Stat(env.cfg.Paths.HistoryDB); !os.IsNotExist(err) {
		t.Fatalf("expected no history database, stat err=%v", err)
	}
}

func TestCategoriesCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCategory("Books", "epub", ".MOBI"))

	out, _, err := runCLI(t, []string{"categories"}, env.configPath, "")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	requireContains(t, out, "Photos")
	requireContains(t, out, ".jpeg")
	requireContains(t, out, "Executables")
	requireContains(t, out, "Books")
	requireContains(t, out, ".epub .mobi")
	requireContains(t, out, "custom")
	requireContains(t, out, ".tgz")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithMethod("custom"), testsupport.WithCategory("Docs", ".pdf"))

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Sort method: custom")
	requireContains(t, out, "Custom categories: 1")
	requireContains(t, out, "Scratch directory:")
	requireContains(t, out, "[OK] "+env.cfg.Paths.ScratchDir)
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	testsupport.AssertExists(t, target)

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected existing config to be refused, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target, "")
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigInitDefaultPath(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "init"}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	home := os.Getenv("HOME")
	expected := filepath.Join(home, ".config", "sorter", "config.toml")
	requireContains(t, out, expected)
	testsupport.AssertExists(t, expected)
}

func TestMissingConfigFlagFails(t *testing.T) {
	setupCLITestEnv(t)
	missing := filepath.Join(t.TempDir(), "absent.toml")
	if _, _, err := runCLI(t, []string{"categories"}, missing, ""); err == nil {
		t.Fatal("expected missing --config file to fail")
	}
}

func TestLogLevelFlagOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteContent(t, filepath.Join(env.source, "x.txt"), []byte("x"))

	_, stderr, err := runCLI(t, []string{"--log-level", "error", "-s", env.source, "-m", "2"}, env.configPath, "")
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if strings.Contains(stderr, "INFO") {
		t.Fatalf("expected info logs to be suppressed, got %q", stderr)
	}
}
