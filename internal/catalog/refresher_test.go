package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/emmaus-center/RetreatBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRefresher_PopulatesCacheOnStart(t *testing.T) {
	repo := mocks.NewMockRetreatRepo(t)
	cache := NewCache()
	log := newTestLogger(t)

	retreats := []*domain.Retreat{{ID: "r1", Title: "Inner Healing Retreat"}}
	repo.EXPECT().List(mock.Anything).Return(retreats, nil)

	refresher := NewRefresher(repo, cache, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, ok := cache.Retreat("r1")
		return ok
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestRefresher_KeepsStaleSnapshotOnError(t *testing.T) {
	repo := mocks.NewMockRetreatRepo(t)
	cache := NewCache()
	log := newTestLogger(t)

	cache.Set([]*domain.Retreat{{ID: "r1"}})
	fetchedAt := cache.FetchedAt()

	repo.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	refresher := NewRefresher(repo, cache, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	_, ok := cache.Retreat("r1")
	assert.True(t, ok)
	assert.Equal(t, fetchedAt, cache.FetchedAt())
}
