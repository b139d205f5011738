package service

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

func validForm() *domain.RegistrationForm {
	return &domain.RegistrationForm{
		FullName:       "John Mwangi",
		Occupation:     "Teacher",
		DateOfBirth:    "1986-04-12",
		Age:            40,
		AddressLine:    "PO Box 114",
		Place:          "Moshi",
		District:       "Kilimanjaro",
		Phone:          "+255 700 000 000",
		WhatsAppNumber: "+255 700 000 000",
		Email:          "john@example.com",
		Diocese:        "Moshi",
		Parish:         "St. Joseph",
	}
}

func paidRetreat(id string) *domain.Retreat {
	price := int64(25000)
	return &domain.Retreat{
		ID:     id,
		Title:  "Inner Healing Retreat",
		Status: domain.RetreatStatusOpen,
		Availability: domain.Availability{
			Total:  30,
			Male:   15,
			Female: 15,
		},
		Price:  &price,
		IsPaid: true,
	}
}

func TestBookingService_Create_PaidRetreat(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	retreat := paidRetreat("r1")
	retreatRepo.EXPECT().GetByID(mock.Anything, "r1").Return(retreat, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), "r1", domain.CartEntry{Male: 1, Female: 1}, validForm())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, "r1", booking.RetreatID)
	assert.Equal(t, "Inner Healing Retreat", booking.RetreatTitle)
	assert.Equal(t, 1, booking.MaleSeats)
	assert.Equal(t, 1, booking.FemaleSeats)
	assert.Equal(t, "+255700000000", booking.Phone)
	assert.Equal(t, int64(1), booking.Version)
	assert.True(t, len(booking.ID) > 4)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_FreeRetreatWaivesPayment(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	retreat := paidRetreat("r1")
	retreat.IsPaid = false
	retreat.Price = nil

	retreatRepo.EXPECT().GetByID(mock.Anything, "r1").Return(retreat, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), "r1", domain.CartEntry{Male: 1}, validForm())

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusWaived, booking.PaymentStatus)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_InvalidForm(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	form := validForm()
	form.Phone = ""

	_, err := svc.Create(context.Background(), "r1", domain.CartEntry{Male: 1}, form)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_NoAttendees(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	_, err := svc.Create(context.Background(), "r1", domain.CartEntry{}, validForm())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_ClosedRetreat(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	retreat := paidRetreat("r1")
	retreat.Status = domain.RetreatStatusClosed
	retreatRepo.EXPECT().GetByID(mock.Anything, "r1").Return(retreat, nil)

	_, err := svc.Create(context.Background(), "r1", domain.CartEntry{Male: 1}, validForm())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClosedForRegistration)
}

func TestBookingService_Create_CapacityExhausted(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	retreatRepo.EXPECT().GetByID(mock.Anything, "r1").Return(paidRetreat("r1"), nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNoAvailableSeats)

	_, err := svc.Create(context.Background(), "r1", domain.CartEntry{Male: 1}, validForm())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailableSeats)
}

func TestBookingService_CheckoutCart_EmptyCart(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	_, err := svc.CheckoutCart(context.Background(), domain.Cart{}, validForm())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestBookingService_CheckoutCart_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	cart := domain.Cart{
		"r1": {Male: 2},
		"r2": {Female: 1},
	}

	retreatRepo.EXPECT().GetByID(mock.Anything, "r1").Return(paidRetreat("r1"), nil)
	retreatRepo.EXPECT().GetByID(mock.Anything, "r2").Return(paidRetreat("r2"), nil)
	bookingRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Run(func(ctx context.Context, bookings []*domain.Booking) {
		require.Len(t, bookings, 2)
		assert.Equal(t, "r1", bookings[0].RetreatID)
		assert.Equal(t, "r2", bookings[1].RetreatID)
	}).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return().Times(2)

	bookings, err := svc.CheckoutCart(context.Background(), cart, validForm())

	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CheckoutCart_ClosedRetreatAborts(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	closed := paidRetreat("r1")
	closed.Status = domain.RetreatStatusClosed
	retreatRepo.EXPECT().GetByID(mock.Anything, "r1").Return(closed, nil)

	_, err := svc.CheckoutCart(context.Background(), domain.Cart{"r1": {Male: 1}}, validForm())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClosedForRegistration)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	booking := &domain.Booking{ID: "RBK-1", RetreatID: "r1", Status: domain.BookingStatusPending, Version: 1}
	cancelled := &domain.Booking{ID: "RBK-1", RetreatID: "r1", Status: domain.BookingStatusCancelled, Version: 2}

	bookingRepo.EXPECT().GetByID(mock.Anything, "RBK-1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "RBK-1", int64(1), domain.BookingStatusCancelled).Return(cancelled, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cancelled).Return()

	result, err := svc.Cancel(context.Background(), "RBK-1", 1)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, result.Status)
	assert.Equal(t, int64(2), result.Version)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	booking := &domain.Booking{
		ID:            "RBK-1",
		Status:        domain.BookingStatusCancelled,
		PaymentStatus: domain.PaymentStatusPaid,
		Version:       3,
	}
	bookingRepo.EXPECT().GetByID(mock.Anything, "RBK-1").Return(booking, nil)

	result, err := svc.Cancel(context.Background(), "RBK-1", 3)

	require.NoError(t, err)
	assert.Equal(t, booking, result)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Cancel_StaleVersion(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	booking := &domain.Booking{ID: "RBK-1", Status: domain.BookingStatusPending, Version: 2}
	bookingRepo.EXPECT().GetByID(mock.Anything, "RBK-1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "RBK-1", int64(1), domain.BookingStatusCancelled).Return(nil, domain.ErrStaleVersion)

	_, err := svc.Cancel(context.Background(), "RBK-1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStaleVersion)
}

func TestBookingService_Reschedule_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	booking := &domain.Booking{ID: "RBK-1", RetreatID: "r1", Status: domain.BookingStatusConfirmed, Version: 1}
	target := paidRetreat("r2")
	moved := &domain.Booking{
		ID:           "RBK-1",
		RetreatID:    "r2",
		RetreatTitle: target.Title,
		Status:       domain.BookingStatusRescheduled,
		Version:      2,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "RBK-1").Return(booking, nil)
	retreatRepo.EXPECT().GetByID(mock.Anything, "r2").Return(target, nil)
	bookingRepo.EXPECT().Reschedule(mock.Anything, "RBK-1", int64(1), "r2", target.Title, mock.Anything).Return(moved, nil)
	notifier.EXPECT().NotifyBookingRescheduled(mock.Anything, moved).Return()

	result, err := svc.Reschedule(context.Background(), "RBK-1", 1, "r2")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRescheduled, result.Status)
	assert.Equal(t, "r2", result.RetreatID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reschedule_FromCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	booking := &domain.Booking{ID: "RBK-1", RetreatID: "r1", Status: domain.BookingStatusCancelled, Version: 2}
	bookingRepo.EXPECT().GetByID(mock.Anything, "RBK-1").Return(booking, nil)

	_, err := svc.Reschedule(context.Background(), "RBK-1", 2, "r2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
	bookingRepo.AssertNotCalled(t, "Reschedule",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Reschedule_SameRetreat(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	booking := &domain.Booking{ID: "RBK-1", RetreatID: "r1", Version: 1}
	bookingRepo.EXPECT().GetByID(mock.Anything, "RBK-1").Return(booking, nil)

	_, err := svc.Reschedule(context.Background(), "RBK-1", 1, "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSameRetreat)
}

func TestBookingService_Reschedule_TargetMissing(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	booking := &domain.Booking{ID: "RBK-1", RetreatID: "r1", Version: 1}
	bookingRepo.EXPECT().GetByID(mock.Anything, "RBK-1").Return(booking, nil)
	retreatRepo.EXPECT().GetByID(mock.Anything, "r2").Return(nil, domain.ErrRetreatNotFound)

	_, err := svc.Reschedule(context.Background(), "RBK-1", 1, "r2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTargetRetreatMissing)
}

func TestBookingService_Reschedule_TargetClosed(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	booking := &domain.Booking{ID: "RBK-1", RetreatID: "r1", Version: 1}
	target := paidRetreat("r2")
	target.Status = domain.RetreatStatusClosed

	bookingRepo.EXPECT().GetByID(mock.Anything, "RBK-1").Return(booking, nil)
	retreatRepo.EXPECT().GetByID(mock.Anything, "r2").Return(target, nil)

	_, err := svc.Reschedule(context.Background(), "RBK-1", 1, "r2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRetreatClosed)
}

func TestBookingService_FindByNameAndPhone_NormalizesPhone(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	found := []*domain.Booking{{ID: "RBK-1"}}
	bookingRepo.EXPECT().FindByNameAndPhone(mock.Anything, "John Mwangi", "+255700000000").Return(found, nil)

	result, err := svc.FindByNameAndPhone(context.Background(), "John Mwangi", "+255 700 000 000")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_FindByNameAndPhone_NoMatch(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	retreatRepo := mocks.NewMockRetreatRepo(t)
	notifier := mocks.NewMockOfficeNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, retreatRepo, notifier, log)

	bookingRepo.EXPECT().FindByNameAndPhone(mock.Anything, "John Mwangi", "+255700000000").Return(nil, nil)

	_, err := svc.FindByNameAndPhone(context.Background(), "John Mwangi", "+255700000000")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
