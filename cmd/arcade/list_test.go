package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/hungry-chameleon/internal/registry"
	"github.com/vovakirdan/hungry-chameleon/internal/storage"
)

func TestPrintGameListShowsBestRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	for _, run := range []struct{ score, ticks int }{{6, 900}, {6, 540}, {4, 300}} {
		if _, err := store.SaveScore("chameleon", run.score, run.ticks); err != nil {
			t.Fatal(err)
		}
	}

	games := []registry.GameInfo{
		{ID: "chameleon", Title: "Hungry Chameleon"},
		{ID: "other", Title: "Other"},
	}
	var buf bytes.Buffer
	printGameList(&buf, games, store)
	out := buf.String()

	if !strings.Contains(out, "6 flies in 540 ticks") {
		t.Errorf("best run missing from:\n%s", out)
	}
	if !strings.Contains(out, "no runs yet") {
		t.Errorf("game without runs not marked in:\n%s", out)
	}
}

func TestPrintGameListWithoutStore(t *testing.T) {
	var buf bytes.Buffer
	printGameList(&buf, []registry.GameInfo{{ID: "chameleon", Title: "Hungry Chameleon"}}, nil)
	if !strings.Contains(buf.String(), "Hungry Chameleon  -") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	printGameList(&buf, nil, nil)
	if !strings.Contains(buf.String(), "No games available.") {
		t.Errorf("output = %q", buf.String())
	}
}
