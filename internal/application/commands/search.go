package commands

import (
	"context"
	"sort"
	"strings"

	"partdex/internal/domain"
	"partdex/internal/ports"
)

// SearchResult wraps domain.SearchResult with a relevance score
type SearchResult struct {
	domain.SearchResult
	Score int
}

// Field weights. An identifier hit outranks a name hit, which outranks a
// match buried somewhere in the page body.
const (
	exactIDScore = 1000
	idWeight     = 3
	nameWeight   = 2
	textWeight   = 1
)

// SearchCommand searches the catalog with fuzzy matching
type SearchCommand struct {
	repo  ports.CatalogRepository
	index ports.ComponentIndex
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.CatalogRepository, query string) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
	}
}

// NewIndexedSearchCommand creates a SearchCommand that queries the cached
// index instead of re-reading every page. The repository stays as fallback.
func NewIndexedSearchCommand(repo ports.CatalogRepository, index ports.ComponentIndex, query string) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		index: index,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	results, err := c.candidates()
	if err != nil {
		return nil, err
	}

	return FuzzySort(results, c.Query), nil
}

// candidates prefers the index and falls back to a filesystem scan when no
// index is wired or the index query fails.
func (c *SearchCommand) candidates() ([]domain.SearchResult, error) {
	if c.index != nil {
		if results, err := c.index.Search(c.Query); err == nil {
			return results, nil
		}
	}
	return c.repo.Search(c.Query)
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '.' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// scoreResult scores one result against the query. A query that is exactly
// the component's ID is the best possible hit; otherwise the best weighted
// field score wins.
func scoreResult(r domain.SearchResult, query string) int {
	if id := strings.ToUpper(strings.TrimSpace(query)); domain.IsValidID(id) && id == r.ID {
		return exactIDScore
	}

	score := idWeight * FuzzyScore(r.ID, query)
	if s := nameWeight * FuzzyScore(r.Name, query); s > score {
		score = s
	}
	if s := textWeight * FuzzyScore(r.MatchedText, query); s > score {
		score = s
	}
	return score
}

// FuzzySort sorts search results by relevance to the query. Equal scores
// fall back to ID order so the ranking is stable across runs.
func FuzzySort(results []domain.SearchResult, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(results))

	for _, r := range results {
		if score := scoreResult(r, query); score > 0 {
			scored = append(scored, SearchResult{
				SearchResult: r,
				Score:        score,
			})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ID < scored[j].ID
	})

	return scored
}
