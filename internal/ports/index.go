package ports

import "partdex/internal/domain"

// ComponentIndex provides cached access to catalog structure and the
// cross-reference graph. All query operations should be O(1) or O(log n)
// via database indexes.
type ComponentIndex interface {
	// Lifecycle
	Open(catalogRoot string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.SyncStats, error)
	SyncFull() (*domain.SyncStats, error)

	// Entry queries
	Lookup(id string) (*domain.IndexEntry, error)
	LookupPath(relPath string) (*domain.IndexEntry, error)
	Search(query string) ([]domain.SearchResult, error)

	// Cross-reference queries
	ReferencesTo(id string) ([]domain.Reference, error)
	ReferencesFrom(relPath string) ([]domain.Reference, error)

	// Upsert refreshes a single entry after a page is created or edited
	Upsert(entry *domain.IndexEntry) error
}
