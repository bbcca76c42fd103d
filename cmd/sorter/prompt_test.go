package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"sorter/internal/classify"
	"sorter/internal/services"
)

func TestPrompterMethodChoices(t *testing.T) {
	cases := map[string]classify.Method{
		"1\n":   classify.ByYear,
		" 2 \n": classify.ByType,
		"3":     classify.ByCustom,
	}
	for input, want := range cases {
		p := newPrompter(strings.NewReader(input), io.Discard, true)
		got, err := p.method()
		if err != nil {
			t.Fatalf("method(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("method(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestPrompterMethodRejectsOtherInput(t *testing.T) {
	for _, input := range []string{"4\n", "year\n", "\n", ""} {
		p := newPrompter(strings.NewReader(input), io.Discard, true)
		if _, err := p.method(); !errors.Is(err, services.ErrInvalidSortMethod) {
			t.Fatalf("method(%q): expected ErrInvalidSortMethod, got %v", input, err)
		}
	}
}

func TestPrompterSourcePreset(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader(""), &out, false)
	got, err := p.source("  /data/inbox ")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if got != "/data/inbox" {
		t.Fatalf("source = %q", got)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no prompt output, got %q", out.String())
	}
}

func TestPrompterCategories(t *testing.T) {
	input := "Docs\n.pdf, ODT,epub\nArchives\n\nDocs\n.txt\n\n"
	p := newPrompter(strings.NewReader(input), io.Discard, true)
	got, err := p.categories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 categories, got %+v", got)
	}
	if got[0].Name != "Docs" || strings.Join(got[0].Extensions, ",") != ".pdf,.odt,.epub" {
		t.Fatalf("unexpected first category %+v", got[0])
	}
	if got[1].Name != "Archives" || len(got[1].Extensions) != 0 {
		t.Fatalf("unexpected second category %+v", got[1])
	}
	if got[2].Name != "Docs" || strings.Join(got[2].Extensions, ",") != ".txt" {
		t.Fatalf("unexpected third category %+v", got[2])
	}
}

func TestPrompterCategoriesStopsAtEOF(t *testing.T) {
	p := newPrompter(strings.NewReader("Docs\n.pdf"), io.Discard, true)
	got, err := p.categories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(got) != 1 || got[0].Extensions[0] != ".pdf" {
		t.Fatalf("unexpected categories %+v", got)
	}
}

func TestPrompterCategoriesRejectsPathNames(t *testing.T) {
	p := newPrompter(strings.NewReader("../escape\n.pdf\n"), io.Discard, true)
	if _, err := p.categories(); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestPrompterNonInteractive(t *testing.T) {
	p := newPrompter(strings.NewReader("2\n"), io.Discard, false)
	if _, err := p.method(); !errors.Is(err, errPromptDisabled) {
		t.Fatalf("expected errPromptDisabled, got %v", err)
	}
	cats, err := p.categories()
	if err != nil || cats != nil {
		t.Fatalf("expected no categories without prompting, got %v %v", cats, err)
	}
}

func TestPrompterCollect(t *testing.T) {
	source := t.TempDir()
	var out bytes.Buffer
	p := newPrompter(strings.NewReader(source+"\n3\nDocs\n.pdf\n\n"), &out, true)

	sel, err := p.collect("", "", nil)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if sel.Source != source || sel.Method != classify.ByCustom {
		t.Fatalf("unexpected selection %+v", sel)
	}
	if len(sel.Categories) != 1 || sel.Categories[0].Name != "Docs" {
		t.Fatalf("unexpected categories %+v", sel.Categories)
	}
	requireContains(t, out.String(), "Enter method number")
}

func TestPrompterCollectStopsOnBadSource(t *testing.T) {
	missing := t.TempDir() + "/missing"
	var out bytes.Buffer
	p := newPrompter(strings.NewReader(missing+"\n2\n"), &out, true)

	if _, err := p.collect("", "", nil); !errors.Is(err, services.ErrInvalidSourcePath) {
		t.Fatalf("expected ErrInvalidSourcePath, got %v", err)
	}
	requireNotContains(t, out.String(), "Choose a sort method")
}

func TestPrompterCollectUsesPresets(t *testing.T) {
	source := t.TempDir()
	configured := func() (classify.Method, bool, error) { return classify.ByYear, true, nil }

	p := newPrompter(strings.NewReader(""), io.Discard, false)
	sel, err := p.collect(source, "", configured)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if sel.Method != classify.ByYear {
		t.Fatalf("expected configured method, got %v", sel.Method)
	}

	sel, err = p.collect(source, "type", configured)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if sel.Method != classify.ByType {
		t.Fatalf("expected flag to win over config, got %v", sel.Method)
	}
}
