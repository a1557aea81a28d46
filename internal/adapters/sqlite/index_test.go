package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"partdex/internal/domain"
)

func writeTestPage(t *testing.T, root, relPath, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", relPath, err)
	}
}

func setupTestIndex(t *testing.T) (*Index, string) {
	t.Helper()

	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	writeTestPage(t, root, "components/ENV204.md", `---
id: ENV204
name: BME280 breakout
---

# BME280

Environmental sensor on a breakout board.
`)
	writeTestPage(t, root, "components/TS101.md", `---
id: TS101
name: Waterproof probe
---

Pairs well with [[ENV204]] for ambient baselines.
`)
	writeTestPage(t, root, "guides/wiring.md", `---
title: Wiring guide
---

Start with [the probe](../components/TS101.md) on the 1-Wire bus.
`)
	writeTestPage(t, root, "index.md", "# Catalog\n")

	idx := NewIndex()
	if err := idx.Open(root); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := idx.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})

	return idx, root
}

func TestIndex_SyncFullIndexesPagesAndRefs(t *testing.T) {
	idx, _ := setupTestIndex(t)

	stats, err := idx.SyncFull()
	if err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}
	if stats.FilesScanned != 4 {
		t.Errorf("expected 4 files scanned, got %d", stats.FilesScanned)
	}
	if stats.EntriesAdded != 4 {
		t.Errorf("expected 4 entries added, got %d", stats.EntriesAdded)
	}
	if stats.ReferencesAdded != 2 {
		t.Errorf("expected 2 references added, got %d", stats.ReferencesAdded)
	}

	entry, err := idx.Lookup("ENV204")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if entry == nil {
		t.Fatal("ENV204 not indexed")
	}
	if entry.Path != "components/ENV204.md" || entry.Code != "ENV" || entry.Suffix != 204 {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Name != "BME280 breakout" {
		t.Errorf("expected name from header, got %q", entry.Name)
	}

	missing, err := idx.Lookup("XX999")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown id, got %+v", missing)
	}

	guide, err := idx.LookupPath("guides/wiring.md")
	if err != nil {
		t.Fatalf("LookupPath failed: %v", err)
	}
	if guide == nil {
		t.Fatal("guide page not indexed")
	}
	if guide.ID != "" {
		t.Errorf("guide page should have no component id, got %q", guide.ID)
	}
	if guide.Title != "Wiring guide" {
		t.Errorf("expected title from header, got %q", guide.Title)
	}
}

func TestIndex_ReferenceQueries(t *testing.T) {
	idx, _ := setupTestIndex(t)

	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	toProbe, err := idx.ReferencesTo("TS101")
	if err != nil {
		t.Fatalf("ReferencesTo failed: %v", err)
	}
	if len(toProbe) != 1 {
		t.Fatalf("expected 1 reference to TS101, got %v", toProbe)
	}
	if toProbe[0].SourcePath != "guides/wiring.md" {
		t.Errorf("expected reference from the wiring guide, got %s", toProbe[0].SourcePath)
	}

	fromProbe, err := idx.ReferencesFrom("components/TS101.md")
	if err != nil {
		t.Fatalf("ReferencesFrom failed: %v", err)
	}
	if len(fromProbe) != 1 || fromProbe[0].TargetID != "ENV204" {
		t.Fatalf("expected a wiki-link reference to ENV204, got %v", fromProbe)
	}
}

func TestIndex_SearchMatchesComponentsOnly(t *testing.T) {
	idx, _ := setupTestIndex(t)

	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	results, err := idx.Search("bme")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "ENV204" {
		t.Fatalf("expected ENV204 for 'bme', got %v", results)
	}

	// Pages without an id never show up, even on a match
	results, err = idx.Search("wiring")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for a guide page, got %v", results)
	}
}

func TestIndex_SyncIncrementalTracksChanges(t *testing.T) {
	idx, root := setupTestIndex(t)

	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	writeTestPage(t, root, "components/PS101.md", `---
id: PS101
name: Bench supply
---
`)
	if err := os.Remove(filepath.Join(root, "components", "ENV204.md")); err != nil {
		t.Fatalf("failed to remove page: %v", err)
	}

	stats, err := idx.SyncIncremental()
	if err != nil {
		t.Fatalf("SyncIncremental failed: %v", err)
	}
	if stats.EntriesAdded != 1 {
		t.Errorf("expected 1 entry added, got %d", stats.EntriesAdded)
	}
	if stats.EntriesDeleted != 1 {
		t.Errorf("expected 1 entry deleted, got %d", stats.EntriesDeleted)
	}

	added, err := idx.Lookup("PS101")
	if err != nil || added == nil {
		t.Fatalf("expected PS101 to be indexed, got %+v err %v", added, err)
	}
	removed, err := idx.Lookup("ENV204")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if removed != nil {
		t.Errorf("expected ENV204 to be gone, got %+v", removed)
	}
}

func TestIndex_NeedsFullRebuildOnFreshDatabase(t *testing.T) {
	idx, root := setupTestIndex(t)

	if !idx.NeedsFullRebuild() {
		t.Error("a fresh database should demand a full rebuild")
	}
	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewIndex()
	if err := reopened.Open(root); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if reopened.NeedsFullRebuild() {
		t.Error("a database stamped with the current schema should sync incrementally")
	}
}

func TestIndex_UpsertRefreshesSingleEntry(t *testing.T) {
	idx, _ := setupTestIndex(t)

	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	err := idx.Upsert(&domain.IndexEntry{
		Path:   "components/ENV204.md",
		ID:     "ENV204",
		Code:   "ENV",
		Suffix: 204,
		Name:   "BME280 rev C",
		Title:  "BME280 rev C",
		Mtime:  42,
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	entry, err := idx.Lookup("ENV204")
	if err != nil || entry == nil {
		t.Fatalf("Lookup failed: %+v err %v", entry, err)
	}
	if entry.Name != "BME280 rev C" || entry.Mtime != 42 {
		t.Errorf("expected refreshed entry, got %+v", entry)
	}
}
