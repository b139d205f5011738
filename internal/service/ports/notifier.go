package ports

import (
	"context"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
)

// OfficeNotifier tells the retreat office about booking lifecycle events.
type OfficeNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
	NotifyBookingRescheduled(ctx context.Context, b *domain.Booking)
}
