package service

import (
	"context"
	"fmt"

	"github.com/emmaus-center/RetreatBooker/internal/catalog"
	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/emmaus-center/RetreatBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type cartBooker interface {
	CheckoutCart(ctx context.Context, cart domain.Cart, form *domain.RegistrationForm) ([]*domain.Booking, error)
}

// CartService owns the session cart. Capacity checks run against the last
// catalog snapshot and are advisory; the store re-checks atomically at
// checkout.
type CartService struct {
	store   ports.CartStore
	catalog *catalog.Cache
	booker  cartBooker
	logger  logger.Logger
}

func NewCartService(
	store ports.CartStore,
	catalog *catalog.Cache,
	booker cartBooker,
	logger logger.Logger,
) *CartService {
	return &CartService{
		store:   store,
		catalog: catalog,
		booker:  booker,
		logger:  logger,
	}
}

// AddAttendee stages one more attendee of the given gender. A capacity
// rejection leaves the cart untouched and names the reason.
func (s *CartService) AddAttendee(ctx context.Context, sessionID, retreatID string, g domain.Gender) (domain.Cart, error) {
	retreat, ok := s.catalog.Retreat(retreatID)
	if !ok {
		return nil, domain.ErrRetreatNotFound
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if err = cart.Add(retreat, g); err != nil {
		return nil, err
	}

	if err = s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) RemoveAttendee(ctx context.Context, sessionID, retreatID string, g domain.Gender) (domain.Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	cart.Remove(retreatID, g)

	if err = s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	return s.store.Get(ctx, sessionID)
}

// Totals sums attendees and the subtotal over all entries. Unpaid retreats
// contribute nothing to the subtotal.
func (s *CartService) Totals(ctx context.Context, sessionID string) (domain.CartTotals, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.CartTotals{}, fmt.Errorf("load cart: %w", err)
	}

	var totals domain.CartTotals
	for retreatID, entry := range cart {
		totals.AttendeeCount += entry.Total()

		retreat, ok := s.catalog.Retreat(retreatID)
		if !ok || !retreat.IsPaid || retreat.Price == nil {
			continue
		}
		totals.Subtotal += *retreat.Price * int64(entry.Total())
	}

	return totals, nil
}

// Checkout commits every cart entry as a booking batch and clears the cart on
// success.
func (s *CartService) Checkout(ctx context.Context, sessionID string, form *domain.RegistrationForm) ([]*domain.Booking, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	bookings, err := s.booker.CheckoutCart(ctx, cart, form)
	if err != nil {
		return nil, err
	}

	if err = s.store.Clear(ctx, sessionID); err != nil {
		// Bookings are already committed; a stale cart is an annoyance,
		// not a correctness problem.
		s.logger.Error("failed to clear cart after checkout",
			logger.String("session_id", sessionID),
			logger.String("error", err.Error()),
		)
	}

	return bookings, nil
}
