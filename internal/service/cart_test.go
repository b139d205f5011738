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

type stubBooker struct {
	checkout func(ctx context.Context, cart domain.Cart, form *domain.RegistrationForm) ([]*domain.Booking, error)
}

func (s *stubBooker) CheckoutCart(ctx context.Context, cart domain.Cart, form *domain.RegistrationForm) ([]*domain.Booking, error) {
	return s.checkout(ctx, cart, form)
}

func primedCatalog(retreats ...*domain.Retreat) *catalog.Cache {
	cache := catalog.NewCache()
	cache.Set(retreats)
	return cache
}

func TestCartService_AddAttendee_Success(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	log := newTestLogger(t)

	retreat := paidRetreat("r1")
	svc := NewCartService(store, primedCatalog(retreat), &stubBooker{}, log)

	store.EXPECT().Get(mock.Anything, "s1").Return(domain.Cart{}, nil)
	store.EXPECT().Save(mock.Anything, "s1", domain.Cart{"r1": {Male: 1}}).Return(nil)

	cart, err := svc.AddAttendee(context.Background(), "s1", "r1", domain.GenderMale)

	require.NoError(t, err)
	assert.Equal(t, domain.Cart{"r1": {Male: 1}}, cart)
}

func TestCartService_AddAttendee_UnknownRetreat(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	log := newTestLogger(t)

	svc := NewCartService(store, primedCatalog(), &stubBooker{}, log)

	_, err := svc.AddAttendee(context.Background(), "s1", "missing", domain.GenderMale)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRetreatNotFound)
}

func TestCartService_AddAttendee_CapacityRejectLeavesCart(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	log := newTestLogger(t)

	retreat := paidRetreat("r1")
	retreat.Availability = domain.Availability{Total: 1, Male: 1, Female: 0}
	svc := NewCartService(store, primedCatalog(retreat), &stubBooker{}, log)

	store.EXPECT().Get(mock.Anything, "s1").Return(domain.Cart{}, nil)

	_, err := svc.AddAttendee(context.Background(), "s1", "r1", domain.GenderFemale)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenderCapacityExhausted)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_RemoveAttendee(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	log := newTestLogger(t)

	svc := NewCartService(store, primedCatalog(), &stubBooker{}, log)

	store.EXPECT().Get(mock.Anything, "s1").Return(domain.Cart{"r1": {Male: 1, Female: 1}}, nil)
	store.EXPECT().Save(mock.Anything, "s1", domain.Cart{"r1": {Female: 1}}).Return(nil)

	cart, err := svc.RemoveAttendee(context.Background(), "s1", "r1", domain.GenderMale)

	require.NoError(t, err)
	assert.Equal(t, domain.Cart{"r1": {Female: 1}}, cart)
}

func TestCartService_Totals(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	log := newTestLogger(t)

	paid := paidRetreat("r1") // 25000 per attendee
	free := paidRetreat("r2")
	free.IsPaid = false
	free.Price = nil

	svc := NewCartService(store, primedCatalog(paid, free), &stubBooker{}, log)

	store.EXPECT().Get(mock.Anything, "s1").Return(domain.Cart{
		"r1": {Male: 2, Female: 1},
		"r2": {Female: 2},
	}, nil)

	totals, err := svc.Totals(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 5, totals.AttendeeCount)
	assert.Equal(t, int64(75000), totals.Subtotal)
}

func TestCartService_Checkout_ClearsCart(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	log := newTestLogger(t)

	cart := domain.Cart{"r1": {Male: 1}}
	created := []*domain.Booking{{ID: "RBK-1", RetreatID: "r1"}}

	booker := &stubBooker{
		checkout: func(_ context.Context, got domain.Cart, _ *domain.RegistrationForm) ([]*domain.Booking, error) {
			assert.Equal(t, cart, got)
			return created, nil
		},
	}
	svc := NewCartService(store, primedCatalog(), booker, log)

	store.EXPECT().Get(mock.Anything, "s1").Return(cart, nil)
	store.EXPECT().Clear(mock.Anything, "s1").Return(nil)

	bookings, err := svc.Checkout(context.Background(), "s1", validForm())

	require.NoError(t, err)
	assert.Equal(t, created, bookings)
}

func TestCartService_Checkout_BookerErrorKeepsCart(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	log := newTestLogger(t)

	booker := &stubBooker{
		checkout: func(context.Context, domain.Cart, *domain.RegistrationForm) ([]*domain.Booking, error) {
			return nil, domain.ErrNoAvailableSeats
		},
	}
	svc := NewCartService(store, primedCatalog(), booker, log)

	store.EXPECT().Get(mock.Anything, "s1").Return(domain.Cart{"r1": {Male: 1}}, nil)

	_, err := svc.Checkout(context.Background(), "s1", validForm())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailableSeats)
	store.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}
