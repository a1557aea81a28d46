package catalogfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"partdex/internal/config"
	"partdex/internal/domain"
	"partdex/internal/frontmatter"
	"partdex/internal/ports"
)

// Repository implements ports.CatalogRepository over a docs tree on disk.
// Component pages are Markdown files with a YAML front-matter header; the
// id field in that header, not the file name, is what registers a page.
type Repository struct {
	root           string // absolute docs directory, the base for relative paths
	componentsPath string // absolute directory walked for component pages
	site           config.Site
}

// NewRepository creates a filesystem repository over the configured docs tree
func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		root:           cfg.DocsPath(),
		componentsPath: cfg.ComponentsPath(),
		site:           cfg.Site,
	}
}

// Root returns the absolute catalog root path
func (r *Repository) Root() string {
	return r.root
}

// AbsPath resolves a catalog-relative path to an absolute one
func (r *Repository) AbsPath(relPath string) string {
	return filepath.Join(r.root, filepath.FromSlash(relPath))
}

func (r *Repository) relPath(absPath string) string {
	rel, err := filepath.Rel(r.root, absPath)
	if err != nil {
		return filepath.ToSlash(absPath)
	}
	return filepath.ToSlash(rel)
}

// Scan walks the components tree and extracts one record per page with a
// well-formed header. Pages without front matter or without an id are not
// component pages and are passed over without a diagnostic. Everything else
// that stops a record from loading becomes a warning; a duplicate id becomes
// an error and the first record keeps the id.
func (r *Repository) Scan() (*ports.ScanResult, error) {
	result := &ports.ScanResult{}
	firstPath := make(map[string]string)

	err := filepath.Walk(r.componentsPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == r.componentsPath {
				return fmt.Errorf("failed to read components tree: %w", err)
			}
			result.Warnings = append(result.Warnings,
				domain.NewIssue(domain.IssueReadError, "%s: %v", r.relPath(path), err))
			return nil
		}

		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}

		component, issues := r.readComponent(path)
		result.Warnings = append(result.Warnings, issues...)
		if component == nil {
			return nil
		}

		if first, dup := firstPath[component.ID]; dup {
			result.Errors = append(result.Errors,
				domain.NewIssue(domain.IssueDuplicateID, "%s at %s, first seen at %s",
					component.ID, component.Path, first))
			return nil
		}
		firstPath[component.ID] = component.Path

		result.Components = append(result.Components, *component)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// readComponent extracts a record from one page. A nil component means the
// page contributes nothing: either it is not a component page at all, or a
// returned warning explains what disqualified it.
func (r *Repository) readComponent(path string) (*domain.Component, []domain.Issue) {
	relPath := r.relPath(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, []domain.Issue{
			domain.NewIssue(domain.IssueReadError, "%s: %v", relPath, err),
		}
	}

	block, _, found := frontmatter.Split(string(content))
	if !found {
		return nil, nil
	}

	fm, _, err := frontmatter.Parse(string(content))
	if err != nil {
		return nil, []domain.Issue{
			domain.NewIssue(domain.IssueInvalidFrontMatter, "%s: %v", relPath, err),
		}
	}

	rawID := strings.TrimSpace(fm.ID)
	if rawID == "" {
		return nil, nil
	}

	parsed, err := domain.ParseID(rawID)
	if err != nil {
		return nil, []domain.Issue{
			domain.NewIssue(domain.IssueMalformedID, "%s at %s", rawID, relPath),
		}
	}

	// Header problems beyond the id are reported but do not drop the record.
	var issues []domain.Issue
	if vr, verr := frontmatter.Validate([]byte(block)); verr == nil {
		for _, issue := range vr.Issues {
			issues = append(issues,
				domain.NewIssue(domain.IssueInvalidFrontMatter, "%s: %s", relPath, issue))
		}
	}
	if category := strings.TrimSpace(fm.Category); category != "" && !strings.EqualFold(category, parsed.Code) {
		issues = append(issues,
			domain.NewIssue(domain.IssueInvalidFrontMatter,
				"%s: category %q does not match id %s", relPath, category, parsed.String()))
	}

	name := strings.TrimSpace(fm.Name)
	if name == "" {
		name = pageStem(path)
	}
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = name
	}

	return &domain.Component{
		ID:     parsed.String(),
		Code:   parsed.Code,
		Suffix: parsed.Suffix,
		Name:   name,
		Title:  title,
		Path:   relPath,
		URL:    r.site.PageURL(relPath),
	}, issues
}

// pageStem returns the display name a page falls back to when its header has
// no name: the file stem, or the parent directory for index pages.
func pageStem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.EqualFold(stem, "index") {
		return filepath.Base(filepath.Dir(path))
	}
	return stem
}

// CreateComponent writes a new component page for the given ID
func (r *Repository) CreateComponent(id, name string) (*domain.Component, error) {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.componentsPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create components directory: %w", err)
	}

	pagePath := filepath.Join(r.componentsPath, parsed.String()+".md")
	if _, err := os.Stat(pagePath); err == nil {
		return nil, fmt.Errorf("page already exists: %s", r.relPath(pagePath))
	}

	content := domain.PageTemplate(parsed.String(), name)
	if err := os.WriteFile(pagePath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	relPath := r.relPath(pagePath)
	return &domain.Component{
		ID:     parsed.String(),
		Code:   parsed.Code,
		Suffix: parsed.Suffix,
		Name:   name,
		Title:  name,
		Path:   relPath,
		URL:    r.site.PageURL(relPath),
	}, nil
}

// ReadPage returns the raw Markdown of a page by catalog-relative path
func (r *Repository) ReadPage(relPath string) (string, error) {
	content, err := os.ReadFile(r.AbsPath(relPath))
	if err != nil {
		return "", fmt.Errorf("failed to read page: %w", err)
	}
	return string(content), nil
}

// Search scans component pages for the query in ids, names, and page bodies
func (r *Repository) Search(query string) ([]domain.SearchResult, error) {
	query = strings.ToLower(query)
	var results []domain.SearchResult
	seen := make(map[string]bool) // Avoid duplicates

	err := filepath.Walk(r.componentsPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}

		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}

		component, _ := r.readComponent(path)
		if component == nil || seen[component.ID] {
			return nil
		}

		matched := ""
		if strings.Contains(strings.ToLower(component.ID+" "+component.Name), query) {
			matched = component.ID + " " + component.Name
		} else {
			content, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			matched = matchingLine(string(content), query)
		}
		if matched == "" {
			return nil
		}

		seen[component.ID] = true
		results = append(results, domain.SearchResult{
			ID:          component.ID,
			Name:        component.Name,
			Title:       component.Title,
			Path:        component.Path,
			MatchedText: matched,
		})
		return nil
	})

	return results, err
}

// matchingLine returns the first line containing the query, trimmed
func matchingLine(content, query string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(line), query) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
