package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/emmaus-center/RetreatBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	retreatRepo ports.RetreatRepo
	notifier    ports.OfficeNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	retreatRepo ports.RetreatRepo,
	notifier ports.OfficeNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		retreatRepo: retreatRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create registers a booking for one retreat. The capacity check-and-reserve
// is atomic in the repository; the retreat read here is fresh, not a cached
// snapshot.
func (s *BookingService) Create(ctx context.Context, retreatID string, attendees domain.CartEntry, form *domain.RegistrationForm) (*domain.Booking, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if err := validateAttendees(attendees); err != nil {
		return nil, err
	}

	retreat, err := s.retreatRepo.GetByID(ctx, retreatID)
	if err != nil {
		return nil, fmt.Errorf("check retreat: %w", err)
	}
	if retreat.Status == domain.RetreatStatusClosed {
		return nil, domain.ErrClosedForRegistration
	}

	booking := newBooking(retreat, attendees, form)
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("retreat_id", retreat.ID),
		logger.Int("attendees", attendees.Total()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// CheckoutCart turns every cart entry into a booking, committed as a single
// all-or-nothing batch.
func (s *BookingService) CheckoutCart(ctx context.Context, cart domain.Cart, form *domain.RegistrationForm) ([]*domain.Booking, error) {
	if len(cart) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	retreatIDs := make([]string, 0, len(cart))
	for id := range cart {
		retreatIDs = append(retreatIDs, id)
	}
	sort.Strings(retreatIDs)

	bookings := make([]*domain.Booking, 0, len(cart))
	for _, retreatID := range retreatIDs {
		retreat, err := s.retreatRepo.GetByID(ctx, retreatID)
		if err != nil {
			return nil, fmt.Errorf("check retreat: %w", err)
		}
		if retreat.Status == domain.RetreatStatusClosed {
			return nil, domain.ErrClosedForRegistration
		}
		bookings = append(bookings, newBooking(retreat, cart[retreatID], form))
	}

	if err := s.bookingRepo.CreateBatch(ctx, bookings); err != nil {
		return nil, fmt.Errorf("create bookings: %w", err)
	}

	s.logger.Info("cart checked out",
		logger.Int("bookings", len(bookings)),
	)

	for _, b := range bookings {
		go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), b)
	}

	return bookings, nil
}

// Cancel is idempotent: an already-cancelled booking is returned unchanged.
// Payment status is never touched; refunds are an out-of-band office policy.
func (s *BookingService) Cancel(ctx context.Context, id string, version int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status == domain.BookingStatusCancelled {
		return booking, nil
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, version, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", updated.ID),
		logger.String("retreat_id", updated.RetreatID),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), updated)

	return updated, nil
}

// Reschedule moves a booking to another retreat. A cancelled booking stays
// cancelled. The remaining guards are checked against a fresh catalog read:
// the target must exist, differ from the current retreat and not be closed.
func (s *BookingService) Reschedule(ctx context.Context, id string, version int64, targetRetreatID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingCancelled
	}
	if booking.RetreatID == targetRetreatID {
		return nil, domain.ErrSameRetreat
	}

	target, err := s.retreatRepo.GetByID(ctx, targetRetreatID)
	if err != nil {
		if errors.Is(err, domain.ErrRetreatNotFound) {
			return nil, domain.ErrTargetRetreatMissing
		}
		return nil, fmt.Errorf("check target retreat: %w", err)
	}
	if target.Status == domain.RetreatStatusClosed {
		return nil, domain.ErrRetreatClosed
	}

	updated, err := s.bookingRepo.Reschedule(ctx, id, version, target.ID, target.Title, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}

	s.logger.Info("booking rescheduled",
		logger.String("booking_id", updated.ID),
		logger.String("target_retreat_id", target.ID),
	)

	go s.notifier.NotifyBookingRescheduled(context.WithoutCancel(ctx), updated)

	return updated, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// FindByNameAndPhone resolves bookings for guests without their booking id.
// The phone is normalized before matching; every candidate is returned,
// newest first, so a shared household number never silently surfaces the
// wrong booking.
func (s *BookingService) FindByNameAndPhone(ctx context.Context, fullName, phone string) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.FindByNameAndPhone(ctx, fullName, domain.NormalizePhone(phone))
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, domain.ErrBookingNotFound
	}

	return bookings, nil
}

func newBooking(retreat *domain.Retreat, attendees domain.CartEntry, form *domain.RegistrationForm) *domain.Booking {
	paymentStatus := domain.PaymentStatusPending
	if !retreat.IsPaid {
		paymentStatus = domain.PaymentStatusWaived
	}

	now := time.Now().UTC()
	return &domain.Booking{
		ID:            domain.NewBookingID(),
		RetreatID:     retreat.ID,
		RetreatTitle:  retreat.Title,
		FullName:      form.FullName,
		Phone:         domain.NormalizePhone(form.Phone),
		Email:         form.Email,
		MaleSeats:     attendees.Male,
		FemaleSeats:   attendees.Female,
		Status:        domain.BookingStatusPending,
		PaymentStatus: paymentStatus,
		Version:       1,
		Form:          *form,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func validateAttendees(attendees domain.CartEntry) error {
	if attendees.Male < 0 || attendees.Female < 0 {
		return fmt.Errorf("%w: attendee counts must not be negative", domain.ErrValidation)
	}
	if attendees.Total() == 0 {
		return fmt.Errorf("%w: at least one attendee is required", domain.ErrValidation)
	}
	if attendees.Total() > domain.MaxAttendeesPerRetreat {
		return domain.ErrPerRetreatCapReached
	}
	return nil
}
