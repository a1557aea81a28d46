package sqlite

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"partdex/internal/domain"
	"partdex/internal/frontmatter"
)

// Wiki-style mention of a component: [[TS101]], [[TS101 Waterproof probe]],
// or [[TS101|probe notes]]
var wikiLinkPattern = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]+)?\]\]`)

// Leading component ID inside a wiki link
var wikiIDPattern = regexp.MustCompile(`^([A-Z]{2,3}[0-9]{3})\b`)

// Markdown link whose target resolves to a component page:
// [probe](../components/TS101.md) or [probe](/components/TS101/)
var mdLinkPattern = regexp.MustCompile(`\[[^\]]*\]\(([^)\s#]+)[^)]*\)`)

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Clear existing data
	if _, err := idx.db.Exec(`DELETE FROM components`); err != nil {
		return nil, err
	}
	if _, err := idx.db.Exec(`DELETE FROM refs`); err != nil {
		return nil, err
	}

	// Walk the catalog
	err := filepath.Walk(idx.catalogRoot, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}

		// Skip hidden directories
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}

		if info.IsDir() || !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}

		relPath, _ := filepath.Rel(idx.catalogRoot, p)
		relPath = filepath.ToSlash(relPath)
		stats.FilesScanned++

		entry, refs := readPage(p, relPath, info.ModTime().Unix())
		if err := idx.Upsert(entry); err != nil {
			return nil // Continue on error
		}
		stats.EntriesAdded++

		for i := range refs {
			if err := idx.insertRef(&refs[i]); err == nil {
				stats.ReferencesAdded++
			}
		}

		return nil
	})
	if err != nil {
		return stats, err
	}

	// Update last sync time
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only files that changed since last sync
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Get last sync time
	var lastSyncUnix int64
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&lastSyncUnix)

	// Track existing paths to detect deletions
	existingPaths := make(map[string]bool)
	rows, err := idx.db.Query(`SELECT path FROM components`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p string
		rows.Scan(&p)
		existingPaths[p] = true
	}
	rows.Close()

	// Track paths we've seen during this walk
	seenPaths := make(map[string]bool)

	// Walk the catalog
	err = filepath.Walk(idx.catalogRoot, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		// Skip hidden directories
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}

		if info.IsDir() || !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}

		relPath, _ := filepath.Rel(idx.catalogRoot, p)
		relPath = filepath.ToSlash(relPath)
		seenPaths[relPath] = true
		stats.FilesScanned++

		// Check if file is new or modified
		mtime := info.ModTime().Unix()
		needsUpdate := mtime > lastSyncUnix || !existingPaths[relPath]

		if !needsUpdate {
			return nil
		}

		entry, refs := readPage(p, relPath, mtime)

		if existingPaths[relPath] {
			if err := idx.Upsert(entry); err != nil {
				return nil
			}
			stats.EntriesUpdated++
			// Drop stale refs before reinserting
			idx.db.Exec(`DELETE FROM refs WHERE source_path = ?`, relPath)
		} else {
			if err := idx.Upsert(entry); err != nil {
				return nil
			}
			stats.EntriesAdded++
		}

		for i := range refs {
			if err := idx.insertRef(&refs[i]); err == nil {
				stats.ReferencesAdded++
			}
		}

		return nil
	})
	if err != nil {
		return stats, err
	}

	// Delete entries for pages that no longer exist
	for p := range existingPaths {
		if !seenPaths[p] {
			idx.db.Exec(`DELETE FROM components WHERE path = ?`, p)
			if res, err := idx.db.Exec(`DELETE FROM refs WHERE source_path = ?`, p); err == nil {
				if n, err := res.RowsAffected(); err == nil {
					stats.ReferencesDeleted += int(n)
				}
			}
			stats.EntriesDeleted++
		}
	}

	// Update last sync time
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// insertRef inserts a reference into the database
func (idx *Index) insertRef(ref *domain.Reference) error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO refs (source_path, target_id, context)
		VALUES (?, ?, ?)
	`, ref.SourcePath, ref.TargetID, ref.Context)
	return err
}

// readPage extracts the index entry and outgoing references from one page
func readPage(absPath, relPath string, mtime int64) (*domain.IndexEntry, []domain.Reference) {
	entry := &domain.IndexEntry{Path: relPath, Mtime: mtime}

	content, err := os.ReadFile(absPath)
	if err != nil {
		entry.Name = pageStem(absPath)
		return entry, nil
	}

	fm, body, perr := frontmatter.Parse(string(content))
	if perr == nil && fm != nil {
		if parsed, err := domain.ParseID(fm.ID); err == nil {
			entry.ID = parsed.String()
			entry.Code = parsed.Code
			entry.Suffix = parsed.Suffix
		}
		entry.Name = strings.TrimSpace(fm.Name)
		entry.Title = strings.TrimSpace(fm.Title)
	}
	if entry.Name == "" {
		entry.Name = pageStem(absPath)
	}
	if entry.Title == "" {
		entry.Title = entry.Name
	}

	return entry, parseRefs(body, relPath, entry.ID)
}

// parseRefs extracts component mentions from a page body. Both wiki links
// and markdown links pointing at a component page count; a page does not
// reference itself.
func parseRefs(body, relPath, ownID string) []domain.Reference {
	var refs []domain.Reference
	seen := make(map[string]bool)

	add := func(raw, context string) {
		parsed, err := domain.ParseID(raw)
		if err != nil {
			return
		}
		id := parsed.String()
		if id == ownID || seen[id] {
			return
		}
		seen[id] = true
		refs = append(refs, domain.Reference{
			SourcePath: relPath,
			TargetID:   id,
			Context:    context,
		})
	}

	for _, match := range wikiLinkPattern.FindAllStringSubmatch(body, -1) {
		add(wikiIDPattern.FindString(strings.TrimSpace(match[1])), match[0])
	}

	for _, match := range mdLinkPattern.FindAllStringSubmatch(body, -1) {
		add(linkTargetID(match[1]), match[0])
	}

	return refs
}

// linkTargetID extracts a candidate component ID from a link target path:
// the file stem for page links, the last segment for directory links.
func linkTargetID(target string) string {
	target = strings.TrimSuffix(target, "/")
	base := path.Base(target)
	return strings.TrimSuffix(base, path.Ext(base))
}

// pageStem returns the name a page falls back to: the file stem, or the
// parent directory for index pages.
func pageStem(p string) string {
	base := filepath.Base(p)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.EqualFold(stem, "index") {
		return filepath.Base(filepath.Dir(p))
	}
	return stem
}
