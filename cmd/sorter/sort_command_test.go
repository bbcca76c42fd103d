package main

import (
	"errors"
	"path/filepath"
	"testing"

	"sorter/internal/services"
	"sorter/internal/testsupport"
)

func TestSortInteractiveByType(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteContent(t, filepath.Join(env.source, "notes.txt"), []byte("notes"))
	testsupport.WriteContent(t, filepath.Join(env.source, "nested", "song.mp3"), []byte("la"))

	out, _, err := runCLI(t, nil, env.configPath, env.source+"\n2\n")
	if err != nil {
		t.Fatalf("sort: %v", err)
	}

	organized := filepath.Join(env.source, "Organized")
	testsupport.AssertExists(t, filepath.Join(organized, "Text", "notes.txt"))
	testsupport.AssertExists(t, filepath.Join(organized, "Audio", "song.mp3"))
	testsupport.AssertMissing(t, filepath.Join(env.source, "notes.txt"))

	requireContains(t, out, "Enter the path to the folder to sort")
	requireContains(t, out, "Choose a sort method")
	requireContains(t, out, "Processing complete")
	requireContains(t, out, "[OK] 2")
	requireContains(t, out, "Audio")
}

func TestSortByYearFromFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteDated(t, filepath.Join(env.source, "report.txt"), []byte("r"), 2014)

	out, _, err := runCLI(t, []string{"--source", env.source, "--method", "year", "--non-interactive"}, env.configPath, "")
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	testsupport.AssertExists(t, filepath.Join(env.source, "Organized", "Text", "2014", "report.txt"))
	requireNotContains(t, out, "Choose a sort method")
}

func TestSortMethodFromConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithMethod("type"))
	testsupport.WriteContent(t, filepath.Join(env.source, "run.sh"), []byte("#!/bin/sh"))

	out, _, err := runCLI(t, []string{"--source", env.source}, env.configPath, "")
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	testsupport.AssertExists(t, filepath.Join(env.source, "Organized", "Scripts", "run.sh"))
	requireNotContains(t, out, "Choose a sort method")
}

func TestSortCustomCategoriesFromPrompt(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteDated(t, filepath.Join(env.source, "paper.PDF"), []byte("pdf"), 2018)
	testsupport.WriteDated(t, filepath.Join(env.source, "book.epub"), []byte("epub"), 2017)
	testsupport.WriteDated(t, filepath.Join(env.source, "photo.jpg"), []byte("not really a jpeg"), 2016)

	stdin := env.source + "\n3\nDocs\n.pdf, epub\n\n"
	if _, _, err := runCLI(t, nil, env.configPath, stdin); err != nil {
		t.Fatalf("sort: %v", err)
	}

	organized := filepath.Join(env.source, "Organized")
	testsupport.AssertExists(t, filepath.Join(organized, "Docs", "2018", "paper.PDF"))
	testsupport.AssertExists(t, filepath.Join(organized, "Docs", "2017", "book.epub"))
	testsupport.AssertExists(t, filepath.Join(organized, "Photos", "2016", "photo.jpg"))
}

func TestSortInvalidMethodTouchesNothing(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteContent(t, filepath.Join(env.source, "keep.txt"), []byte("k"))

	_, _, err := runCLI(t, nil, env.configPath, env.source+"\n4\n")
	if !errors.Is(err, services.ErrInvalidSortMethod) {
		t.Fatalf("expected ErrInvalidSortMethod, got %v", err)
	}
	testsupport.AssertExists(t, filepath.Join(env.source, "keep.txt"))
	testsupport.AssertMissing(t, filepath.Join(env.source, "Organized"))
}

func TestSortInvalidSource(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.source, "does-not-exist")

	_, _, err := runCLI(t, nil, env.configPath, missing+"\n2\n")
	if !errors.Is(err, services.ErrInvalidSourcePath) {
		t.Fatalf("expected ErrInvalidSourcePath, got %v", err)
	}
}

func TestSortNonInteractiveRequiresSource(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"--non-interactive", "--method", "2"}, env.configPath, "")
	if !errors.Is(err, services.ErrInvalidSourcePath) {
		t.Fatalf("expected ErrInvalidSourcePath, got %v", err)
	}
	if !errors.Is(err, errPromptDisabled) {
		t.Fatalf("expected prompt disabled cause, got %v", err)
	}
}

func TestSortNonInteractiveRequiresMethod(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"--non-interactive", "--source", env.source}, env.configPath, "")
	if !errors.Is(err, services.ErrInvalidSortMethod) {
		t.Fatalf("expected ErrInvalidSortMethod, got %v", err)
	}
	testsupport.AssertMissing(t, filepath.Join(env.source, "Organized"))
}

func TestSortRejectsPositionalArgs(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{env.source}, env.configPath, ""); err == nil {
		t.Fatal("expected positional argument to be rejected")
	}
}
