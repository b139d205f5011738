package ports

import (
	"context"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
)

type CartStore interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
