package tickets

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventbuka/internal/shared/utils/response"
)

type Controller interface {
	CreateTicketType(c *gin.Context)
	GetTicketType(c *gin.Context)
	GetEventTicketTypes(c *gin.Context)
	UpdateTicketType(c *gin.Context)
	DeleteTicketType(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateTicketType(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	var req CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	ticketType, err := ctrl.service.CreateTicketType(eventID, req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Ticket type created successfully", ticketType, nil)
}

func (ctrl *controller) GetTicketType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("ticketTypeId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket type ID", nil, err.Error())
		return
	}

	ticketType, err := ctrl.service.GetTicketType(id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "ticket type not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket type retrieved successfully", ticketType, nil)
}

func (ctrl *controller) GetEventTicketTypes(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	ticketTypes, err := ctrl.service.GetEventTicketTypes(eventID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket types retrieved successfully", ticketTypes, nil)
}

func (ctrl *controller) UpdateTicketType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("ticketTypeId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket type ID", nil, err.Error())
		return
	}

	var req UpdateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	ticketType, err := ctrl.service.UpdateTicketType(id, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "ticket type not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket type updated successfully", ticketType, nil)
}

func (ctrl *controller) DeleteTicketType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("ticketTypeId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket type ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteTicketType(id); err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "ticket type not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket type deleted successfully", nil, nil)
}
