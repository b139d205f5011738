package ports

import (
	"context"
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	CreateBatch(ctx context.Context, bookings []*domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByNameAndPhone(ctx context.Context, fullName, phone string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, version int64, status domain.BookingStatus) (*domain.Booking, error)
	Reschedule(ctx context.Context, id string, version int64, targetID, targetTitle string, at time.Time) (*domain.Booking, error)
}
