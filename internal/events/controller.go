package events

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventbuka/internal/shared/utils/response"
	"eventbuka/internal/users"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListEvents handles GET /events
func (c *Controller) ListEvents(ctx *gin.Context) {
	var query EventListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	// Browsing never exposes drafts regardless of what the query says.
	if query.Status != "" && query.Status != string(StatusPublished) {
		query.Status = string(StatusPublished)
	}

	result, err := c.service.ListEvents(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch events", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Events retrieved successfully", result, nil)
}

// GetEvent handles GET /events/:id
func (c *Controller) GetEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	event, err := c.service.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Event not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch event", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event retrieved successfully", event, nil)
}

// ListUpcoming handles GET /events/upcoming
func (c *Controller) ListUpcoming(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	events, err := c.service.ListUpcoming(ctx.Request.Context(), limit)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch upcoming events", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Upcoming events retrieved successfully", events, nil)
}

// ListCategories handles GET /events/categories
func (c *Controller) ListCategories(ctx *gin.Context) {
	categories, err := c.service.ListCategories(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch categories", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Categories retrieved successfully", categories, nil)
}

// CreateEvent handles POST /organizer/events
func (c *Controller) CreateEvent(ctx *gin.Context) {
	organizerID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	event, err := c.service.CreateEvent(ctx.Request.Context(), organizerID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create event", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Event created successfully", event, nil)
}

// ListMine handles GET /organizer/events
func (c *Controller) ListMine(ctx *gin.Context) {
	organizerID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	result, err := c.service.ListOrganizerEvents(ctx.Request.Context(), organizerID, page, limit)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch events", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Events retrieved successfully", result, nil)
}

// UpdateEvent handles PUT /organizer/events/:id
func (c *Controller) UpdateEvent(ctx *gin.Context) {
	actorID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	var req UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	event, err := c.service.UpdateEvent(ctx.Request.Context(), id, actorID, isAdmin(ctx), req)
	if err != nil {
		respondEventError(ctx, err, "Failed to update event")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event updated successfully", event, nil)
}

// PublishEvent handles POST /organizer/events/:id/publish
func (c *Controller) PublishEvent(ctx *gin.Context) {
	c.transition(ctx, c.service.PublishEvent, "Event published successfully", "Failed to publish event")
}

// CancelEvent handles POST /organizer/events/:id/cancel
func (c *Controller) CancelEvent(ctx *gin.Context) {
	c.transition(ctx, c.service.CancelEvent, "Event cancelled successfully", "Failed to cancel event")
}

// DeleteEvent handles DELETE /organizer/events/:id
func (c *Controller) DeleteEvent(ctx *gin.Context) {
	c.transition(ctx, c.service.DeleteEvent, "Event deleted successfully", "Failed to delete event")
}

// CreateCategory handles POST /admin/events/categories
func (c *Controller) CreateCategory(ctx *gin.Context) {
	var req CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	category, err := c.service.CreateCategory(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create category", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Category created successfully", category, nil)
}

func (c *Controller) transition(ctx *gin.Context, fn func(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error, okMsg, failMsg string) {
	actorID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	if err := fn(ctx.Request.Context(), id, actorID, isAdmin(ctx)); err != nil {
		respondEventError(ctx, err, failMsg)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, okMsg, nil, nil)
}

func respondEventError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Event not found", nil, nil)
	case errors.Is(err, ErrNotEventOwner):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "You do not own this event", nil, nil)
	case errors.Is(err, ErrEventNotEditable):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Event cannot be modified in its current state", nil, nil)
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
