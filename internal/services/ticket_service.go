package services

import (
	"errors"
	"fmt"

	"github.com/julianmr/helpdesk-api/internal/models"
	"github.com/julianmr/helpdesk-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrCommentTextRequired = errors.New("comment text is required")
)

// updatableTicketFields is the only set of columns a client-sent partial
// update may touch. reporter_id and id are never client-settable.
var updatableTicketFields = map[string]bool{
	"title":       true,
	"description": true,
	"priority":    true,
	"status":      true,
	"assignee_id": true,
}

// TicketService handles ticket and comment business logic
type TicketService struct {
	ticketRepo repository.TicketRepository
}

// NewTicketService creates a new TicketService
func NewTicketService(ticketRepo repository.TicketRepository) *TicketService {
	return &TicketService{ticketRepo: ticketRepo}
}

// CreateTicketInput represents input for creating a ticket
type CreateTicketInput struct {
	Title       string
	Description string
	Priority    string
	ReporterID  uint64
}

// ListTickets returns all tickets newest first, comments nested oldest first
func (s *TicketService) ListTickets() ([]models.Ticket, error) {
	tickets, err := s.ticketRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// GetTicket returns a ticket with its comments
func (s *TicketService) GetTicket(id uint64) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return ticket, nil
}

// CreateTicket creates a ticket. Status always starts as "open" and the
// assignee starts empty regardless of the input.
func (s *TicketService) CreateTicket(input CreateTicketInput) (*models.Ticket, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Priority == "" {
		input.Priority = models.DefaultPriority
	}

	ticket := &models.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      models.DefaultStatus,
		ReporterID:  input.ReporterID,
	}

	if err := s.ticketRepo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return s.GetTicket(ticket.ID)
}

// UpdateTicket applies a partial update. Only keys present in fields are
// written; a key carrying a nil value sets the column to NULL. Keys outside
// the updatable set are dropped. An empty update leaves the ticket, including
// updated_at, untouched.
func (s *TicketService) UpdateTicket(id uint64, fields map[string]any) (*models.Ticket, error) {
	if _, err := s.GetTicket(id); err != nil {
		return nil, err
	}

	applied := make(map[string]any, len(fields))
	for k, v := range fields {
		if updatableTicketFields[k] {
			applied[k] = v
		}
	}

	if err := s.ticketRepo.UpdateFields(id, applied); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	return s.GetTicket(id)
}

// DeleteTicket removes a ticket and its comments
func (s *TicketService) DeleteTicket(id uint64) error {
	exists, err := s.ticketRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check ticket: %w", err)
	}
	if !exists {
		return ErrTicketNotFound
	}

	if err := s.ticketRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

// AddComment appends a comment to an existing ticket. The ticket is checked
// before anything is written so a missing ticket surfaces as not-found, not
// as a constraint violation.
func (s *TicketService) AddComment(ticketID, authorID uint64, text string) (*models.Comment, error) {
	if text == "" {
		return nil, ErrCommentTextRequired
	}

	exists, err := s.ticketRepo.Exists(ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ticket: %w", err)
	}
	if !exists {
		return nil, ErrTicketNotFound
	}

	comment := &models.Comment{
		TicketID: ticketID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.ticketRepo.AddComment(comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment, nil
}
