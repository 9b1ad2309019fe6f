package partners

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

// ListVerified handles GET /partners?service=catering
func (c *Controller) ListVerified(ctx *gin.Context) {
	partners, err := c.service.ListVerified(ctx.Request.Context(), ctx.Query("service"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list partners", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Partners retrieved", partners, nil)
}

// GetPartner handles GET /partners/:id
func (c *Controller) GetPartner(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid partner ID", nil, err.Error())
		return
	}

	partner, err := c.service.GetPartner(ctx.Request.Context(), id)
	if err != nil {
		respondPartnerError(ctx, err, "Failed to get partner")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Partner retrieved", partner, nil)
}

// CreateProfile handles POST /partners/profile
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

	partner, err := c.service.CreateProfile(ctx.Request.Context(), userID, req)
	if err != nil {
		respondPartnerError(ctx, err, "Failed to create partner profile")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Partner profile created, pending verification", partner, nil)
}

// RequestService handles POST /partners/:id/requests. The target
// partner comes from the path, never from the caller's identity.
func (c *Controller) RequestService(ctx *gin.Context) {
	requesterID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	partnerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid partner ID", nil, err.Error())
		return
	}

	var req ServiceRequestBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	request, err := c.service.RequestService(ctx.Request.Context(), requesterID, partnerID, req)
	if err != nil {
		respondPartnerError(ctx, err, "Failed to submit service request")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Service request submitted", request, nil)
}

// ListMyRequests handles GET /partners/requests
func (c *Controller) ListMyRequests(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	requests, err := c.service.ListMyRequests(ctx.Request.Context(), userID)
	if err != nil {
		respondPartnerError(ctx, err, "Failed to list service requests")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Service requests retrieved", requests, nil)
}

// RespondToRequest handles POST /partners/requests/:requestId/respond
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
		respondPartnerError(ctx, err, "Failed to respond to service request")
		return
	}

	message := "Service request declined"
	if req.Accept {
		message = "Service request accepted"
	}
	response.RespondJSON(ctx, "success", http.StatusOK, message, nil, nil)
}

// VerifyPartner handles POST /admin/partners/:id/verify
func (c *Controller) VerifyPartner(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid partner ID", nil, err.Error())
		return
	}

	if err := c.service.VerifyPartner(ctx.Request.Context(), id); err != nil {
		respondPartnerError(ctx, err, "Failed to verify partner")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Partner verified", nil, nil)
}

func respondPartnerError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPartnerNotFound), errors.Is(err, ErrRequestNotFound):
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
