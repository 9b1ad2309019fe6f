package bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventbuka/internal/seats"
	"eventbuka/internal/shared/utils/response"
	"eventbuka/internal/tickets"
	"eventbuka/internal/users"
	"eventbuka/internal/wallet"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// BookTickets handles POST /bookings/tickets
func (c *Controller) BookTickets(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req TicketBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := c.service.BookTickets(ctx.Request.Context(), userID, req)
	if err != nil {
		respondBookingError(ctx, err, "Failed to book tickets")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking confirmed", booking, nil)
}

// BookSeats handles POST /bookings/seats
func (c *Controller) BookSeats(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req SeatBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := c.service.BookSeats(ctx.Request.Context(), userID, req)
	if err != nil {
		respondBookingError(ctx, err, "Failed to book seats")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking confirmed", booking, nil)
}

// GetBooking handles GET /bookings/:bookingId
func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("bookingId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), userID, bookingID, isAdmin(ctx))
	if err != nil {
		respondBookingError(ctx, err, "Failed to fetch booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// ListMyBookings handles GET /bookings
func (c *Controller) ListMyBookings(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	result, err := c.service.ListUserBookings(ctx.Request.Context(), userID, page, limit)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

// CancelBooking handles POST /bookings/:bookingId/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("bookingId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), userID, bookingID, isAdmin(ctx))
	if err != nil {
		respondBookingError(ctx, err, "Failed to cancel booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

func respondBookingError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case errors.Is(err, ErrNotBookingOwner):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking does not belong to you", nil, nil)
	case errors.Is(err, ErrEventNotBookable):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Event is not open for booking", nil, nil)
	case errors.Is(err, ErrEventHasNoSeats):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Event does not use seat booking", nil, nil)
	case errors.Is(err, ErrTicketMismatch):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Ticket type does not belong to this event", nil, nil)
	case errors.Is(err, ErrSoldOut), errors.Is(err, tickets.ErrInsufficientInventory):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Tickets are sold out", nil, nil)
	case errors.Is(err, seats.ErrSeatsUnavailable):
		response.RespondJSON(ctx, "error", http.StatusConflict, "One or more seats are already booked", nil, nil)
	case errors.Is(err, seats.ErrUnknownSeat):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Unknown seat label in selection", nil, nil)
	case errors.Is(err, seats.ErrDuplicateSeat):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Seat label repeated in selection", nil, nil)
	case errors.Is(err, seats.ErrNoSeats):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Event has no seat map", nil, nil)
	case errors.Is(err, wallet.ErrInsufficientFunds):
		response.RespondJSON(ctx, "error", http.StatusPaymentRequired, "Insufficient wallet balance", nil, nil)
	case errors.Is(err, ErrNotCancellable):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Booking cannot be cancelled", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}

func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func isAdmin(ctx *gin.Context) bool {
	role, exists := ctx.Get("user_role")
	return exists && role == string(users.RoleAdmin)
}
