// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/reposcore/reposcore/internal/domain"
	"github.com/reposcore/reposcore/internal/gateway"
)

// Collector gathers every qualifying activity event for a repository and
// folds the event stream into per-participant bucket counts.
type Collector struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewCollector creates a new Collector instance.
func NewCollector(fetcher gateway.Fetcher, logger *log.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Collect fetches merged-PR and issue activity concurrently, then folds the
// combined event list into an ActivitySet. If either fetch fails, nothing is
// folded: the scorer never sees a partial run.
func (c *Collector) Collect(ctx context.Context, repo string) (*domain.ActivitySet, error) {
	c.logger.Printf("Usecase: Collecting activity for %s...\n", repo)

	var prEvents, issueEvents []domain.ActivityEvent

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		prEvents, err = c.fetcher.FetchMergedPRs(egCtx, repo)
		return err
	})

	eg.Go(func() error {
		var err error
		issueEvents, err = c.fetcher.FetchIssues(egCtx, repo)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	c.logger.Println("Usecase: All activity fetched successfully.")

	// PR events first, then issue events, each in fetch order. This fixes
	// the first-seen participant order used for tie-breaking.
	events := make([]domain.ActivityEvent, 0, len(prEvents)+len(issueEvents))
	events = append(events, prEvents...)
	events = append(events, issueEvents...)

	set := domain.Fold(events)
	c.logger.Printf("Usecase: Collection complete, %d participants.\n", set.Len())
	return set, nil
}
