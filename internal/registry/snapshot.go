package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"partdex/internal/domain"
)

// Snapshot file names inside the registry output directory.
const (
	FullSnapshotFile   = "id_registry.yaml"
	SimpleSnapshotFile = "id_registry_simple.yaml"
)

// Snapshot is the serialized registry. The full form carries every record
// plus diagnostics; the simple form keeps only what the summary page needs.
type Snapshot struct {
	GeneratedAt string              `yaml:"generated_at"`
	RunID       string              `yaml:"run_id,omitempty"`
	Components  []ComponentSnapshot `yaml:"ids,omitempty"`
	Categories  []CategorySnapshot  `yaml:"categories"`
	Families    []FamilySnapshot    `yaml:"families"`
	Warnings    []string            `yaml:"warnings,omitempty"`
	Errors      []string            `yaml:"errors,omitempty"`
}

// ComponentSnapshot is one scanned record in the full snapshot.
type ComponentSnapshot struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Number   int    `yaml:"number"`
	Family   string `yaml:"family,omitempty"`
	URL      string `yaml:"url,omitempty"`
	Source   string `yaml:"source"`
}

// CategorySnapshot is one category row.
type CategorySnapshot struct {
	Code         string           `yaml:"code"`
	Title        string           `yaml:"title"`
	Known        bool             `yaml:"known"`
	Count        int              `yaml:"count"`
	UsedNumbers  []int            `yaml:"used_numbers,omitempty"`
	NextAny      string           `yaml:"next_any,omitempty"`
	NextByFamily []FamilyNextPair `yaml:"next_by_family,omitempty"`
}

// FamilyNextPair is one family's next suggestion inside a category row.
type FamilyNextPair struct {
	Family string `yaml:"family"`
	ID     string `yaml:"id"`
}

// FamilySnapshot is one family row.
type FamilySnapshot struct {
	Key       string   `yaml:"key"`
	Category  string   `yaml:"category"`
	Anchor    string   `yaml:"anchor"`
	Alias     string   `yaml:"alias"`
	Start     int      `yaml:"start"`
	End       int      `yaml:"end"`
	Members   []string `yaml:"members"`
	NextID    string   `yaml:"next_id,omitempty"`
	Exhausted bool     `yaml:"exhausted,omitempty"`
}

// FormatGeneratedAt renders a timestamp the way snapshots store it.
func FormatGeneratedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// BuildSnapshot converts a Result into its full serializable form.
func BuildSnapshot(result *Result) *Snapshot {
	snap := &Snapshot{
		GeneratedAt: FormatGeneratedAt(result.GeneratedAt),
		RunID:       result.RunID,
		Warnings:    domain.IssueStrings(result.Warnings),
		Errors:      domain.IssueStrings(result.Errors),
	}

	familyOf := make(map[string]string)
	for _, fam := range result.Families {
		for _, id := range fam.Members {
			familyOf[id] = fam.Key
		}
	}

	for _, c := range result.Components {
		snap.Components = append(snap.Components, ComponentSnapshot{
			ID:       c.ID,
			Name:     c.Name,
			Category: c.Code,
			Number:   c.Suffix,
			Family:   familyOf[c.ID],
			URL:      c.URL,
			Source:   c.Path,
		})
	}

	for _, cat := range result.Categories {
		cs := CategorySnapshot{
			Code:    cat.Code,
			Title:   cat.Title,
			Known:   cat.Known,
			Count:   len(cat.Members),
			NextAny: cat.NextID,
		}
		for _, id := range cat.Members {
			if parsed, err := domain.ParseID(id); err == nil {
				cs.UsedNumbers = append(cs.UsedNumbers, parsed.Suffix)
			}
		}
		for _, next := range cat.NextByFamily {
			cs.NextByFamily = append(cs.NextByFamily, FamilyNextPair{Family: next.Key, ID: next.ID})
		}
		snap.Categories = append(snap.Categories, cs)
	}

	for _, fam := range result.Families {
		snap.Families = append(snap.Families, FamilySnapshot{
			Key:       fam.Key,
			Category:  fam.Code,
			Anchor:    fam.AnchorID,
			Alias:     fam.Alias,
			Start:     fam.Start,
			End:       fam.End,
			Members:   fam.Members,
			NextID:    fam.NextID,
			Exhausted: fam.Exhausted,
		})
	}

	return snap
}

// Simple strips a snapshot down to what the summary page needs: category
// and family rows without per-record data or occupancy lists.
func (s *Snapshot) Simple() *Snapshot {
	simple := &Snapshot{
		GeneratedAt: s.GeneratedAt,
		Warnings:    s.Warnings,
		Errors:      s.Errors,
	}
	for _, cat := range s.Categories {
		cat.UsedNumbers = nil
		simple.Categories = append(simple.Categories, cat)
	}
	simple.Families = append(simple.Families, s.Families...)
	return simple
}

// WriteSnapshots writes the full and simple snapshot files under dir,
// creating it if needed. It returns both paths.
func WriteSnapshots(dir string, result *Result) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	full := BuildSnapshot(result)
	fullPath := filepath.Join(dir, FullSnapshotFile)
	if err := writeSnapshotFile(fullPath, full); err != nil {
		return "", "", err
	}

	simplePath := filepath.Join(dir, SimpleSnapshotFile)
	if err := writeSnapshotFile(simplePath, full.Simple()); err != nil {
		return "", "", err
	}

	return fullPath, simplePath, nil
}

func writeSnapshotFile(path string, snap *Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a snapshot file, full or simple.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &snap, nil
}
