package commands

import (
	"context"
	"fmt"
	"time"

	"partdex/internal/domain"
	"partdex/internal/ports"
)

// SyncResult contains the outcome of an index sync
type SyncResult struct {
	Stats   *domain.SyncStats
	Full    bool
	Message string
}

// SyncCommand refreshes the search index from the catalog. The index must
// already be open; the caller owns its lifecycle.
type SyncCommand struct {
	index ports.ComponentIndex
	Full  bool
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(index ports.ComponentIndex, full bool) *SyncCommand {
	return &SyncCommand{
		index: index,
		Full:  full,
	}
}

// Execute runs the sync command. A full rebuild happens when requested or
// when the index reports it cannot sync incrementally.
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	full := c.Full || c.index.NeedsFullRebuild()

	var (
		stats *domain.SyncStats
		err   error
	)
	if full {
		stats, err = c.index.SyncFull()
	} else {
		stats, err = c.index.SyncIncremental()
	}
	if err != nil {
		return nil, fmt.Errorf("sync index: %w", err)
	}

	return &SyncResult{
		Stats: stats,
		Full:  full,
		Message: fmt.Sprintf("Indexed %d files (%d added, %d updated, %d deleted) in %s",
			stats.FilesScanned, stats.EntriesAdded, stats.EntriesUpdated, stats.EntriesDeleted,
			stats.Duration.Round(time.Millisecond)),
	}, nil
}
