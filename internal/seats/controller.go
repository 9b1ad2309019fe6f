package seats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventbuka/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetSeatMap handles GET /events/:id/seatmap
func (c *Controller) GetSeatMap(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	seatMap, err := c.service.SeatMap(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, ErrNoSeats) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Event has no seat map", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch seat map", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}

// QuoteSeats handles POST /events/:id/seats/quote
func (c *Controller) QuoteSeats(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	quote, err := c.service.Quote(ctx.Request.Context(), eventID, req.SeatLabels)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSeats):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Event has no seat map", nil, nil)
		case errors.Is(err, ErrUnknownSeat):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Unknown seat label in selection", nil, nil)
		case errors.Is(err, ErrDuplicateSeat):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Seat label repeated in selection", nil, nil)
		case errors.Is(err, ErrSeatsUnavailable):
			response.RespondJSON(ctx, "error", http.StatusConflict, "One or more seats are already booked", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to price selection", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection priced successfully", quote, nil)
}

// GenerateSeats handles POST /organizer/events/:id/seats
func (c *Controller) GenerateSeats(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	var req GenerateSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seatMap, err := c.service.Generate(ctx.Request.Context(), eventID, req)
	if err != nil {
		if errors.Is(err, ErrSeatsAlreadyExist) {
			response.RespondJSON(ctx, "error", http.StatusConflict, "Event already has a seat map", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to generate seats", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Seat map generated successfully", seatMap, nil)
}
