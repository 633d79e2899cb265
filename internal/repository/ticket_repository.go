package repository

import (
	"time"

	"github.com/julianmr/helpdesk-api/internal/models"
	"gorm.io/gorm"
)

// GormTicketRepository is a GORM implementation of TicketRepository
type GormTicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &GormTicketRepository{db: db}
}

// Create creates a new ticket. UpdatedAt carries autoUpdateTime:false, so
// both timestamps are stamped here.
func (r *GormTicketRepository) Create(ticket *models.Ticket) error {
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	return r.db.Create(ticket).Error
}

// FindByID finds a ticket by ID with its comments loaded oldest first
func (r *GormTicketRepository) FindByID(id uint64) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// List retrieves all tickets newest first, each with its comments oldest first
func (r *GormTicketRepository) List() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Order("tickets.created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateFields applies the given column values to a ticket and refreshes
// updated_at. An empty field map leaves the row, including updated_at,
// untouched.
func (r *GormTicketRepository) UpdateFields(id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	values := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		values[k] = v
	}
	values["updated_at"] = time.Now()

	return r.db.Model(&models.Ticket{}).
		Where("id = ?", id).
		Updates(values).Error
}

// Delete removes a ticket and its comments
func (r *GormTicketRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ticket{}, id).Error
	})
}

// Exists reports whether a ticket row is present
func (r *GormTicketRepository) Exists(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Ticket{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddComment appends a comment to a ticket
func (r *GormTicketRepository) AddComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}
