package ports

import (
	"context"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
)

type RetreatRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Retreat, error)
	List(ctx context.Context) ([]*domain.Retreat, error)
}
