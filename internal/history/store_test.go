package history_test

import (
	"context"
	"path/filepath"
	"testing"

	"sorter/internal/history"
	"sorter/internal/testsupport"
)

func TestRecordAndByRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	entries := []history.Entry{
		{RunID: "run-a", Action: history.ActionMoved, Source: "/src/a.jpg", Target: "/src/Organized/Photos/2019/a.jpg", Category: "Photos", Year: "2019"},
		{RunID: "run-b", Action: history.ActionMoved, Source: "/src/b.txt", Target: "/src/Organized/Text/b.txt", Category: "Text"},
		{RunID: "run-a", Action: history.ActionMoveFailed, Source: "/src/c.mp3", Category: "Audio", Error: "permission denied"},
	}
	for _, entry := range entries {
		if _, err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := store.ByRun(ctx, "run-a")
	if err != nil {
		t.Fatalf("ByRun failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries for run-a, got %d", len(got))
	}
	if got[0].Source != "/src/a.jpg" || got[0].Year != "2019" || got[0].Failed() {
		t.Fatalf("unexpected first entry: %#v", got[0])
	}
	if got[1].Action != history.ActionMoveFailed || got[1].Error != "permission denied" || got[1].Target != "" || !got[1].Failed() {
		t.Fatalf("unexpected second entry: %#v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("expected created timestamp to be populated")
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	for _, name := range []string{"one", "two", "three"} {
		if _, err := store.Record(ctx, history.Entry{RunID: "run", Action: history.ActionMoved, Source: name}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Source != "three" || recent[1].Source != "two" {
		t.Fatalf("unexpected recent entries: %#v", recent)
	}

	all, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all 3 entries, got %d", len(all))
	}
}

func TestRecordRequiresRunAndAction(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	if _, err := store.Record(ctx, history.Entry{Action: history.ActionMoved, Source: "x"}); err == nil {
		t.Fatal("expected error without run id")
	}
	if _, err := store.Record(ctx, history.Entry{RunID: "r", Source: "x"}); err == nil {
		t.Fatal("expected error without action")
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "history.db")
	store, err := history.OpenPath(dbPath)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	if _, err := store.Record(context.Background(), history.Entry{RunID: "r", Action: history.ActionArchiveExpanded, Source: "a.zip"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := history.OpenPath(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	entries, err := reopened.ByRun(context.Background(), "r")
	if err != nil {
		t.Fatalf("ByRun failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != history.ActionArchiveExpanded {
		t.Fatalf("unexpected entries after reopen: %#v", entries)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := history.OpenPath("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := history.Open(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}
