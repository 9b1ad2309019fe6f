package voting

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventbuka/internal/events"
	"eventbuka/internal/shared/utils/response"
	"eventbuka/internal/users"
	"eventbuka/internal/wallet"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateCategory handles POST /organizer/events/:id/voting/categories
func (c *Controller) CreateCategory(ctx *gin.Context) {
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

	var req CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	category, err := c.service.CreateCategory(ctx.Request.Context(), actorID, isAdmin(ctx), eventID, req)
	if err != nil {
		respondVotingError(ctx, err, "Failed to create nomination category")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Nomination category created", category, nil)
}

// ListCategories handles GET /events/:id/voting/categories
func (c *Controller) ListCategories(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	categories, err := c.service.ListCategories(ctx.Request.Context(), eventID)
	if err != nil {
		respondVotingError(ctx, err, "Failed to list nomination categories")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Nomination categories retrieved", categories, nil)
}

// CreateNominee handles POST /voting/categories/:categoryId/nominees
func (c *Controller) CreateNominee(ctx *gin.Context) {
	actorID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid category ID", nil, err.Error())
		return
	}

	var req CreateNomineeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	nominee, err := c.service.CreateNominee(ctx.Request.Context(), actorID, isAdmin(ctx), categoryID, req)
	if err != nil {
		respondVotingError(ctx, err, "Failed to create nominee")
		return
	}

	message := "Nominee created"
	if !nominee.IsApproved {
		message = "Nomination submitted for approval"
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, message, nominee, nil)
}

// ApproveNominee handles POST /admin/voting/nominees/:nomineeId/approve
func (c *Controller) ApproveNominee(ctx *gin.Context) {
	nomineeID, err := uuid.Parse(ctx.Param("nomineeId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid nominee ID", nil, err.Error())
		return
	}

	if err := c.service.ApproveNominee(ctx.Request.Context(), nomineeID); err != nil {
		respondVotingError(ctx, err, "Failed to approve nominee")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Nominee approved", nil, nil)
}

// ListNominees handles GET /voting/categories/:categoryId/nominees
func (c *Controller) ListNominees(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid category ID", nil, err.Error())
		return
	}

	nominees, err := c.service.ListNominees(ctx.Request.Context(), categoryID)
	if err != nil {
		respondVotingError(ctx, err, "Failed to list nominees")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Nominees retrieved", nominees, nil)
}

// CastVote handles POST /voting/categories/:categoryId/votes
func (c *Controller) CastVote(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("categoryId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid category ID", nil, err.Error())
		return
	}

	var req CastVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	receipt, err := c.service.CastVote(ctx.Request.Context(), userID, categoryID, req)
	if err != nil {
		respondVotingError(ctx, err, "Failed to cast vote")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Vote recorded", receipt, nil)
}

func respondVotingError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrNomineeNotFound), errors.Is(err, events.ErrEventNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, ErrNotEventOwner):
		response.RespondJSON(ctx, "error", http.StatusForbidden, err.Error(), nil, nil)
	case errors.Is(err, ErrAlreadyVoted), errors.Is(err, ErrVotingClosed):
		response.RespondJSON(ctx, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrNotAwardEvent), errors.Is(err, ErrNomineeNotListed), errors.Is(err, ErrWindowInverted):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, wallet.ErrInsufficientFunds):
		response.RespondJSON(ctx, "error", http.StatusPaymentRequired, err.Error(), nil, nil)
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

func isAdmin(ctx *gin.Context) bool {
	role, exists := ctx.Get("user_role")
	return exists && role == string(users.RoleAdmin)
}
