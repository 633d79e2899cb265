package models

import (
	"time"
)

// Comment is immutable once written; there is no update or delete path.
type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	TicketID  uint64    `gorm:"not null;index" json:"ticket_id"`
	AuthorID  uint64    `gorm:"not null" json:"author_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
