package service

import (
	"context"
	"fmt"

	"github.com/emmaus-center/RetreatBooker/internal/catalog"
	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/emmaus-center/RetreatBooker/internal/service/ports"
)

type RetreatService struct {
	repo    ports.RetreatRepo
	catalog *catalog.Cache
}

func NewRetreatService(repo ports.RetreatRepo, catalog *catalog.Cache) *RetreatService {
	return &RetreatService{
		repo:    repo,
		catalog: catalog,
	}
}

// List reads the catalog and refreshes the snapshot the cart checks against.
func (s *RetreatService) List(ctx context.Context) ([]*domain.Retreat, error) {
	retreats, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list retreats: %w", err)
	}

	s.catalog.Set(retreats)

	return retreats, nil
}

func (s *RetreatService) GetByID(ctx context.Context, id string) (*domain.Retreat, error) {
	return s.repo.GetByID(ctx, id)
}
