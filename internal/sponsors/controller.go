package sponsors

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

// ListVerified handles GET /sponsors
func (c *Controller) ListVerified(ctx *gin.Context) {
	sponsors, err := c.service.ListVerified(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list sponsors", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Sponsors retrieved", sponsors, nil)
}

// GetSponsor handles GET /sponsors/:id
func (c *Controller) GetSponsor(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid sponsor ID", nil, err.Error())
		return
	}

	sponsor, err := c.service.GetSponsor(ctx.Request.Context(), id)
	if err != nil {
		respondSponsorError(ctx, err, "Failed to get sponsor")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Sponsor retrieved", sponsor, nil)
}

// CreateProfile handles POST /sponsors/profile
func (c *Controller) CreateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	sponsor, err := c.service.CreateProfile(ctx.Request.Context(), userID, req)
	if err != nil {
		respondSponsorError(ctx, err, "Failed to create sponsor profile")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Sponsor profile created, pending verification", sponsor, nil)
}

// RequestSponsorship handles POST /sponsors/:id/requests. The target
// sponsor comes from the path, never from the caller's identity.
func (c *Controller) RequestSponsorship(ctx *gin.Context) {
	requesterID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	sponsorID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid sponsor ID", nil, err.Error())
		return
	}

	var req SponsorshipRequestBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	request, err := c.service.RequestSponsorship(ctx.Request.Context(), requesterID, sponsorID, req)
	if err != nil {
		respondSponsorError(ctx, err, "Failed to submit sponsorship request")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Sponsorship request submitted", request, nil)
}

// ListMyRequests handles GET /sponsors/requests
func (c *Controller) ListMyRequests(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	requests, err := c.service.ListMyRequests(ctx.Request.Context(), userID)
	if err != nil {
		respondSponsorError(ctx, err, "Failed to list sponsorship requests")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Sponsorship requests retrieved", requests, nil)
}

// RespondToRequest handles POST /sponsors/requests/:requestId/respond
func (c *Controller) RespondToRequest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	requestID, err := uuid.Parse(ctx.Param("requestId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request ID", nil, err.Error())
		return
	}

	var req RespondRequestBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.service.RespondToRequest(ctx.Request.Context(), userID, requestID, req.Accept); err != nil {
		respondSponsorError(ctx, err, "Failed to respond to sponsorship request")
		return
	}

	message := "Sponsorship request declined"
	if req.Accept {
		message = "Sponsorship request accepted"
	}
	response.RespondJSON(ctx, "success", http.StatusOK, message, nil, nil)
}

// VerifySponsor handles POST /admin/sponsors/:id/verify
func (c *Controller) VerifySponsor(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid sponsor ID", nil, err.Error())
		return
	}

	if err := c.service.VerifySponsor(ctx.Request.Context(), id); err != nil {
		respondSponsorError(ctx, err, "Failed to verify sponsor")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Sponsor verified", nil, nil)
}

func respondSponsorError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrSponsorNotFound), errors.Is(err, ErrRequestNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, ErrNotRequestTarget):
		response.RespondJSON(ctx, "error", http.StatusForbidden, err.Error(), nil, nil)
	case errors.Is(err, ErrProfileExists), errors.Is(err, ErrRequestNotPending):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, err.Error())
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
