package wallet

import (
	"errors"
	"net/http"
	"strconv"

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

// GetBalance handles GET /wallet
func (c *Controller) GetBalance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	balance, err := c.service.Balance(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch balance", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Balance retrieved successfully", balance, nil)
}

// Deposit handles POST /wallet/deposit
func (c *Controller) Deposit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	entry, err := c.service.Deposit(ctx.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Amount must be positive", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to process deposit", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Deposit successful", entry, nil)
}

// Withdraw handles POST /wallet/withdraw
func (c *Controller) Withdraw(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req WithdrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	entry, err := c.service.Withdraw(ctx.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Amount must be positive", nil, nil)
		case errors.Is(err, ErrInsufficientFunds):
			response.RespondJSON(ctx, "error", http.StatusPaymentRequired, "Insufficient wallet balance", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to process withdrawal", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Withdrawal successful", entry, nil)
}

// GetHistory handles GET /wallet/transactions
func (c *Controller) GetHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	history, err := c.service.History(ctx.Request.Context(), userID, page, limit)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch transactions", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Transactions retrieved successfully", history, nil)
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
