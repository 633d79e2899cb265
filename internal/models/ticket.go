package models

import (
	"time"
)

const (
	// DefaultStatus is assigned to every new ticket; status is otherwise a
	// free-form string the client may overwrite.
	DefaultStatus = "open"

	// DefaultPriority applies when a create request omits priority.
	DefaultPriority = "medium"
)

// Ticket is a helpdesk ticket. UpdatedAt is managed by the repository rather
// than by GORM: an update that carries no fields must not advance it.
type Ticket struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	ReporterID  uint64    `gorm:"not null" json:"reporter_id"`
	AssigneeID  *uint64   `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	// Relations
	Reporter User      `gorm:"foreignKey:ReporterID" json:"-"`
	Assignee *User     `gorm:"foreignKey:AssigneeID" json:"-"`
	Comments []Comment `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
