package service

import (
	"context"
	"testing"

	"github.com/emmaus-center/RetreatBooker/internal/catalog"
	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/emmaus-center/RetreatBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetreatService_List_RefreshesSnapshot(t *testing.T) {
	repo := mocks.NewMockRetreatRepo(t)
	cache := catalog.NewCache()

	svc := NewRetreatService(repo, cache)

	retreats := []*domain.Retreat{paidRetreat("r1"), paidRetreat("r2")}
	repo.EXPECT().List(mock.Anything).Return(retreats, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	_, ok := cache.Retreat("r1")
	assert.True(t, ok)
}

func TestRetreatService_List_ErrorLeavesSnapshot(t *testing.T) {
	repo := mocks.NewMockRetreatRepo(t)
	cache := catalog.NewCache()
	cache.Set([]*domain.Retreat{paidRetreat("r1")})

	svc := NewRetreatService(repo, cache)

	repo.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	_, err := svc.List(context.Background())

	require.Error(t, err)
	_, ok := cache.Retreat("r1")
	assert.True(t, ok)
}

func TestRetreatService_GetByID(t *testing.T) {
	repo := mocks.NewMockRetreatRepo(t)
	cache := catalog.NewCache()

	svc := NewRetreatService(repo, cache)

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(paidRetreat("r1"), nil)

	retreat, err := svc.GetByID(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "r1", retreat.ID)
}
