package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"partdex/internal/domain"
	"partdex/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.ComponentIndex using SQLite
type Index struct {
	db          *sql.DB
	catalogRoot string
	dbPath      string
	staleSchema bool
}

// Ensure Index implements ComponentIndex
var _ ports.ComponentIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given catalog root
func (idx *Index) Open(catalogRoot string) error {
	// Expand ~ in path
	if len(catalogRoot) > 0 && catalogRoot[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		catalogRoot = filepath.Join(home, catalogRoot[1:])
	}

	idx.catalogRoot = catalogRoot
	idx.dbPath = databasePath(catalogRoot)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS components (
			path TEXT PRIMARY KEY,
			id TEXT,
			code TEXT,
			suffix INTEGER,
			name TEXT,
			title TEXT,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS refs (
			source_path TEXT NOT NULL,
			target_id TEXT NOT NULL,
			context TEXT NOT NULL,
			PRIMARY KEY (source_path, target_id)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_components_id ON components(id);
		CREATE INDEX IF NOT EXISTS idx_refs_target ON refs(target_id);
		CREATE INDEX IF NOT EXISTS idx_refs_source ON refs(source_path);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// Detect a fresh or outdated database before stamping it
	var storedVersion string
	db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&storedVersion)
	idx.staleSchema = storedVersion != schemaVersion

	// Update metadata
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true when the database was just created or was
// written by an older schema version and cannot serve an incremental sync
func (idx *Index) NeedsFullRebuild() bool {
	return idx.staleSchema
}

// databasePath returns the path for the SQLite database
func databasePath(catalogRoot string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash catalog root for unique DB name
	hash := hashCatalogRoot(catalogRoot)

	return filepath.Join(dataHome, "partdex", hash+".db")
}

// hashCatalogRoot returns a short hash of the catalog root path
func hashCatalogRoot(catalogRoot string) string {
	h := sha256.Sum256([]byte(catalogRoot))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and catalog root hash
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('catalog_root_hash', ?);
	`, schemaVersion, hashCatalogRoot(idx.catalogRoot))
	return err
}

// Lookup retrieves an entry by component ID
func (idx *Index) Lookup(id string) (*domain.IndexEntry, error) {
	return idx.scanEntry(idx.db.QueryRow(`
		SELECT path, id, code, suffix, name, title, mtime
		FROM components WHERE id = ?
	`, id))
}

// LookupPath retrieves an entry by catalog-relative path
func (idx *Index) LookupPath(relPath string) (*domain.IndexEntry, error) {
	return idx.scanEntry(idx.db.QueryRow(`
		SELECT path, id, code, suffix, name, title, mtime
		FROM components WHERE path = ?
	`, relPath))
}

func (idx *Index) scanEntry(row *sql.Row) (*domain.IndexEntry, error) {
	var entry domain.IndexEntry
	var id, code, title sql.NullString
	var suffix sql.NullInt64

	err := row.Scan(&entry.Path, &id, &code, &suffix, &entry.Name, &title, &entry.Mtime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry.ID = id.String
	entry.Code = code.String
	entry.Suffix = int(suffix.Int64)
	entry.Title = title.String

	return &entry, nil
}

// Search finds component entries whose id, name, or title contains the query
func (idx *Index) Search(query string) ([]domain.SearchResult, error) {
	pattern := "%" + query + "%"

	rows, err := idx.db.Query(`
		SELECT path, id, name, title
		FROM components
		WHERE id IS NOT NULL
		  AND (id LIKE ? OR name LIKE ? OR title LIKE ?)
		ORDER BY code, suffix
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var id, title sql.NullString
		if err := rows.Scan(&r.Path, &id, &r.Name, &title); err != nil {
			return nil, err
		}
		r.ID = id.String
		r.Title = title.String
		r.MatchedText = r.ID + " " + r.Name
		results = append(results, r)
	}

	return results, rows.Err()
}

// ReferencesTo returns every mention of a component ID across the catalog
func (idx *Index) ReferencesTo(id string) ([]domain.Reference, error) {
	return idx.queryRefs(`
		SELECT source_path, target_id, context
		FROM refs WHERE target_id = ?
	`, id)
}

// ReferencesFrom returns the component IDs a page mentions
func (idx *Index) ReferencesFrom(relPath string) ([]domain.Reference, error) {
	return idx.queryRefs(`
		SELECT source_path, target_id, context
		FROM refs WHERE source_path = ?
	`, relPath)
}

func (idx *Index) queryRefs(query string, arg any) ([]domain.Reference, error) {
	rows, err := idx.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.Reference
	for rows.Next() {
		var ref domain.Reference
		if err := rows.Scan(&ref.SourcePath, &ref.TargetID, &ref.Context); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// Upsert refreshes a single entry after a page is created or edited
func (idx *Index) Upsert(entry *domain.IndexEntry) error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO components (path, id, code, suffix, name, title, mtime)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.Path, nullString(entry.ID), nullString(entry.Code), entry.Suffix,
		entry.Name, nullString(entry.Title), entry.Mtime)
	return err
}

// nullString returns nil for empty strings (for nullable columns)
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
