package analytics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventbuka/internal/events"
	"eventbuka/internal/shared/utils/response"
	"eventbuka/internal/users"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetEventStats handles GET /organizer/events/:id/stats
func (c *Controller) GetEventStats(ctx *gin.Context) {
	actorID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	stats, err := c.service.GetEventStats(ctx.Request.Context(), actorID, isAdmin(ctx), eventID)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
		case errors.Is(err, ErrNotEventOwner):
			response.RespondJSON(ctx, "error", http.StatusForbidden, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load event stats", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event stats retrieved", stats, nil)
}

// GetPlatformOverview handles GET /admin/analytics/overview
func (c *Controller) GetPlatformOverview(ctx *gin.Context) {
	overview, err := c.service.GetPlatformOverview(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load platform overview", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Platform overview retrieved", overview, nil)
}

// GetDailyBookingStats handles GET /admin/analytics/bookings/daily?days=30
func (c *Controller) GetDailyBookingStats(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "30"))

	stats, err := c.service.GetDailyBookingStats(ctx.Request.Context(), days)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load daily booking stats", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Daily booking stats retrieved", stats, nil)
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
