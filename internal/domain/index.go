package domain

import "time"

// IndexEntry represents a cached component page in the search index.
type IndexEntry struct {
	Path   string // relative path from the catalog root (primary key)
	ID     string // component ID (empty for pages without one)
	Code   string // category code derived from ID
	Suffix int    // numeric suffix derived from ID
	Name   string
	Title  string
	Mtime  int64 // unix timestamp for incremental sync
}

// Reference represents a cross-reference: one page's body mentioning
// another component's ID.
type Reference struct {
	SourcePath string // file containing the mention
	TargetID   string // referenced component ID
	Context    string // surrounding text of the mention
}

// SyncStats holds statistics from a sync operation
type SyncStats struct {
	EntriesAdded      int
	EntriesUpdated    int
	EntriesDeleted    int
	ReferencesAdded   int
	ReferencesDeleted int
	FilesScanned      int
	Duration          time.Duration
}
