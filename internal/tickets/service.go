package tickets

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateTicketType(eventID uuid.UUID, req CreateTicketTypeRequest) (*TicketTypeResponse, error)
	GetTicketType(id uuid.UUID) (*TicketTypeResponse, error)
	GetEventTicketTypes(eventID uuid.UUID) ([]TicketTypeResponse, error)
	UpdateTicketType(id uuid.UUID, req UpdateTicketTypeRequest) (*TicketTypeResponse, error)
	DeleteTicketType(id uuid.UUID) error

	// SelectorForEvent snapshots the event's live inventory into a
	// QuantitySelector for a checkout session.
	SelectorForEvent(eventID uuid.UUID) (*QuantitySelector, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTicketType(eventID uuid.UUID, req CreateTicketTypeRequest) (*TicketTypeResponse, error) {
	ticketType := &TicketType{
		EventID:       eventID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		QuantityTotal: req.QuantityTotal,
		IsVIP:         req.IsVIP,
		Benefits:      req.Benefits,
	}

	if err := s.repo.Create(ticketType); err != nil {
		return nil, fmt.Errorf("failed to create ticket type: %w", err)
	}

	resp := ticketType.ToResponse()
	return &resp, nil
}

func (s *service) GetTicketType(id uuid.UUID) (*TicketTypeResponse, error) {
	ticketType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ticket type not found")
		}
		return nil, err
	}
	resp := ticketType.ToResponse()
	return &resp, nil
}

func (s *service) GetEventTicketTypes(eventID uuid.UUID) ([]TicketTypeResponse, error) {
	ticketTypes, err := s.repo.GetByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket types: %w", err)
	}

	responses := make([]TicketTypeResponse, 0, len(ticketTypes))
	for _, ticketType := range ticketTypes {
		responses = append(responses, ticketType.ToResponse())
	}
	return responses, nil
}

func (s *service) UpdateTicketType(id uuid.UUID, req UpdateTicketTypeRequest) (*TicketTypeResponse, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.QuantityTotal != nil {
		updates["quantity_total"] = *req.QuantityTotal
	}
	if req.IsVIP != nil {
		updates["is_vip"] = *req.IsVIP
	}
	if req.Benefits != nil {
		updates["benefits"] = req.Benefits
	}

	if len(updates) == 0 {
		return s.GetTicketType(id)
	}

	ticketType, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ticket type not found")
		}
		return nil, fmt.Errorf("failed to update ticket type: %w", err)
	}

	resp := ticketType.ToResponse()
	return &resp, nil
}

func (s *service) DeleteTicketType(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("ticket type not found")
		}
		return err
	}
	return s.repo.Delete(id)
}

func (s *service) SelectorForEvent(eventID uuid.UUID) (*QuantitySelector, error) {
	ticketTypes, err := s.repo.GetByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket types: %w", err)
	}

	lines := make([]Line, 0, len(ticketTypes))
	for _, ticketType := range ticketTypes {
		lines = append(lines, Line{
			TicketTypeID: ticketType.ID.String(),
			Name:         ticketType.Name,
			UnitPrice:    ticketType.Price,
			Remaining:    ticketType.Remaining(),
		})
	}
	return NewQuantitySelector(lines), nil
}
