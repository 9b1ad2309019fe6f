package venues

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

// ListVenues handles GET /venues
func (c *Controller) ListVenues(ctx *gin.Context) {
	var query VenueListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	venues, err := c.service.ListVenues(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list venues", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved", venues, nil)
}

// GetVenue handles GET /venues/:id
func (c *Controller) GetVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	venue, err := c.service.GetVenue(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved", venue, nil)
}

// CreateVenue handles POST /admin/venues
func (c *Controller) CreateVenue(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	venue, err := c.service.CreateVenue(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Venue created", venue, nil)
}

// UpdateVenue handles PUT /admin/venues/:id
func (c *Controller) UpdateVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	venue, err := c.service.UpdateVenue(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue updated", venue, nil)
}

// DeleteVenue handles DELETE /admin/venues/:id
func (c *Controller) DeleteVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteVenue(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue deleted", nil, nil)
}
