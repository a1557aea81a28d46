package ports

import "partdex/internal/domain"

// ScanResult carries the records found in one walk plus the issues hit.
type ScanResult struct {
	Components []domain.Component
	Warnings   []domain.Issue
	Errors     []domain.Issue
}

// CatalogRepository defines the interface for catalog storage operations
type CatalogRepository interface {
	// Scan walks the content tree and extracts one record per component
	// page. Pages without an id are skipped silently; malformed pages are
	// reported as warnings and duplicates as errors, never as a failed scan.
	Scan() (*ScanResult, error)

	// CreateComponent writes a new component page for the given ID
	CreateComponent(id, name string) (*domain.Component, error)

	// ReadPage returns the raw Markdown of a page by catalog-relative path
	ReadPage(relPath string) (string, error)

	// Search scans page bodies and names for a query string
	Search(query string) ([]domain.SearchResult, error)

	// Root returns the absolute catalog root path
	Root() string

	// AbsPath resolves a catalog-relative path to an absolute one
	AbsPath(relPath string) string
}
