package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/emmaus-center/RetreatBooker/internal/handler/dto"
	"github.com/emmaus-center/RetreatBooker/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type RetreatSvc interface {
	List(ctx context.Context) ([]*domain.Retreat, error)
	GetByID(ctx context.Context, id string) (*domain.Retreat, error)
}

type BookingSvc interface {
	Create(ctx context.Context, retreatID string, attendees domain.CartEntry, form *domain.RegistrationForm) (*domain.Booking, error)
	Cancel(ctx context.Context, id string, version int64) (*domain.Booking, error)
	Reschedule(ctx context.Context, id string, version int64, targetRetreatID string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByNameAndPhone(ctx context.Context, fullName, phone string) ([]*domain.Booking, error)
}

type CartSvc interface {
	AddAttendee(ctx context.Context, sessionID, retreatID string, g domain.Gender) (domain.Cart, error)
	RemoveAttendee(ctx context.Context, sessionID, retreatID string, g domain.Gender) (domain.Cart, error)
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Totals(ctx context.Context, sessionID string) (domain.CartTotals, error)
	Checkout(ctx context.Context, sessionID string, form *domain.RegistrationForm) ([]*domain.Booking, error)
}

type Handler struct {
	retreatService RetreatSvc
	bookingService BookingSvc
	cartService    CartSvc
}

func NewHandler(retreatService RetreatSvc, bookingService BookingSvc, cartService CartSvc) *Handler {
	return &Handler{
		retreatService: retreatService,
		bookingService: bookingService,
		cartService:    cartService,
	}
}

// Retreats

func (h *Handler) ListRetreats(c *ginext.Context) {
	retreats, err := h.retreatService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RetreatResponse, 0, len(retreats))
	for _, r := range retreats {
		resp = append(resp, dto.ToRetreatResponse(r))
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: resp})
}

func (h *Handler) GetRetreat(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid retreat id"})
		return
	}

	retreat, err := h.retreatService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToRetreatResponse(retreat)})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	attendees := domain.CartEntry{Male: req.Attendees.Male, Female: req.Attendees.Female}
	booking, err := h.bookingService.Create(c.Request.Context(), req.RetreatID, attendees, &req.Form)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToBookingResponse(booking)})
}

// LookupBooking resolves a booking by id, or every candidate matching a
// (name, phone) pair.
func (h *Handler) LookupBooking(c *ginext.Context) {
	var req dto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.BookingID != "" {
		if !validBookingID(req.BookingID) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
			return
		}
		booking, err := h.bookingService.GetByID(c.Request.Context(), req.BookingID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToBookingResponse(booking)})
		return
	}

	if req.FullName == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "either booking_id or full_name and phone are required",
		})
		return
	}

	bookings, err := h.bookingService.FindByNameAndPhone(c.Request.Context(), req.FullName, req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToBookingResponses(bookings)})
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id := c.Param("id")
	if !validBookingID(id) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var booking *domain.Booking
	var err error
	switch domain.BookingStatus(req.Status) {
	case domain.BookingStatusCancelled:
		booking, err = h.bookingService.Cancel(c.Request.Context(), id, req.Version)
	case domain.BookingStatusRescheduled:
		if _, parseErr := uuid.Parse(req.RetreatID); parseErr != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid target retreat id"})
			return
		}
		booking, err = h.bookingService.Reschedule(c.Request.Context(), id, req.Version, req.RetreatID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToBookingResponse(booking)})
}

// Cart

func (h *Handler) AddCartAttendee(c *ginext.Context) {
	retreatID := c.Param("retreatID")
	if _, err := uuid.Parse(retreatID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid retreat id"})
		return
	}

	var req dto.AddAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		h.handleError(c, err)
		return
	}

	cart, err := h.cartService.AddAttendee(c.Request.Context(), sessionID(c), retreatID, gender)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondCart(c, cart)
}

func (h *Handler) RemoveCartAttendee(c *ginext.Context) {
	retreatID := c.Param("retreatID")
	if _, err := uuid.Parse(retreatID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid retreat id"})
		return
	}

	gender, err := domain.ParseGender(c.Param("gender"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	cart, err := h.cartService.RemoveAttendee(c.Request.Context(), sessionID(c), retreatID, gender)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondCart(c, cart)
}

func (h *Handler) GetCart(c *ginext.Context) {
	cart, err := h.cartService.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondCart(c, cart)
}

func (h *Handler) Checkout(c *ginext.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.cartService.Checkout(c.Request.Context(), sessionID(c), &req.Form)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToBookingResponses(bookings)})
}

func (h *Handler) respondCart(c *ginext.Context, cart domain.Cart) {
	totals, err := h.cartService.Totals(c.Request.Context(), sessionID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToCartResponse(cart, totals)})
}

func sessionID(c *ginext.Context) string {
	return c.GetString(middleware.SessionKey)
}

func validBookingID(id string) bool {
	return strings.HasPrefix(id, "RBK-") && len(id) > len("RBK-")
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRetreatNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrClosedForRegistration),
		errors.Is(err, domain.ErrGenderCapacityExhausted),
		errors.Is(err, domain.ErrPerRetreatCapReached),
		errors.Is(err, domain.ErrNoAvailableSeats),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrSameRetreat),
		errors.Is(err, domain.ErrRetreatClosed),
		errors.Is(err, domain.ErrTargetRetreatMissing),
		errors.Is(err, domain.ErrStaleVersion):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
