package catalog

import (
	"context"
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type retreatLister interface {
	List(ctx context.Context) ([]*domain.Retreat, error)
}

// Refresher keeps the snapshot cache warm on a fixed interval.
type Refresher struct {
	repo     retreatLister
	cache    *Cache
	interval time.Duration
	logger   logger.Logger
}

func NewRefresher(
	repo retreatLister,
	cache *Cache,
	interval time.Duration,
	logger logger.Logger,
) *Refresher {
	return &Refresher{
		repo:     repo,
		cache:    cache,
		interval: interval,
		logger:   logger,
	}
}

func (r *Refresher) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("catalog refresher started",
		logger.Duration("interval", r.interval),
	)

	r.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("catalog refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	retreats, err := r.repo.List(ctx)
	if err != nil {
		attrs := []any{logger.String("error", err.Error())}
		if last := r.cache.FetchedAt(); !last.IsZero() {
			attrs = append(attrs, logger.Duration("snapshot_age", time.Since(last)))
		}
		r.logger.Error("failed to refresh catalog snapshot, serving stale data", attrs...)
		return
	}

	r.cache.Set(retreats)
	r.logger.Debug("catalog snapshot refreshed",
		logger.Int("retreats", len(retreats)),
	)
}
