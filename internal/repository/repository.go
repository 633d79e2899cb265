package repository

import (
	"github.com/julianmr/helpdesk-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List retrieves all users ordered by id
	List() ([]models.User, error)

	// UpdateCredentials overwrites a user's password hash and role
	UpdateCredentials(username, passwordHash, role string) error
}

// TicketRepository defines the interface for ticket and comment data access
type TicketRepository interface {
	// Create creates a new ticket
	Create(ticket *models.Ticket) error

	// FindByID finds a ticket by ID with its comments, oldest comment first
	FindByID(id uint64) (*models.Ticket, error)

	// List retrieves all tickets newest first, each with its comments
	// oldest first
	List() ([]models.Ticket, error)

	// UpdateFields applies the given column values to a ticket and
	// refreshes updated_at; an empty field map is a no-op
	UpdateFields(id uint64, fields map[string]any) error

	// Delete removes a ticket and its comments
	Delete(id uint64) error

	// Exists reports whether a ticket row is present
	Exists(id uint64) (bool, error)

	// AddComment appends a comment to a ticket
	AddComment(comment *models.Comment) error
}
