package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventbuka/internal/shared/utils/response"
)

type Controller interface {
	GetMyProfile(c *gin.Context)
	UpdateMyProfile(c *gin.Context)
	ApplyForOrganizer(c *gin.Context)
	ListUsers(c *gin.Context)
	ListApplications(c *gin.Context)
	ReviewApplication(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
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

func (ctrl *controller) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	profile, err := ctrl.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile retrieved successfully", profile, nil)
}

func (ctrl *controller) UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	profile, err := ctrl.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile updated successfully", profile, nil)
}

func (ctrl *controller) ApplyForOrganizer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req OrganizerApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	app, err := ctrl.service.ApplyForOrganizer(c.Request.Context(), userID, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Organizer application submitted", app, nil)
}

func (ctrl *controller) ListUsers(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 20)

	profiles, total, err := ctrl.service.ListUsers(c.Request.Context(), c.Query("role"), page, limit)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Users retrieved successfully", gin.H{
		"users":       profiles,
		"total_count": total,
		"page":        page,
		"limit":       limit,
	}, nil)
}

func (ctrl *controller) ListApplications(c *gin.Context) {
	apps, err := ctrl.service.ListApplications(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Applications retrieved successfully", apps, nil)
}

func (ctrl *controller) ReviewApplication(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	applicationID, err := uuid.Parse(c.Param("applicationId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid application ID", nil, err.Error())
		return
	}

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.service.ReviewApplication(c.Request.Context(), applicationID, reviewerID, req.Approve); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Application reviewed", nil, nil)
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
