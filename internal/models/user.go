package models

import (
	"strings"
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	FullName     string    `gorm:"type:varchar(255)" json:"full_name"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(50);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	ReportedTickets []Ticket  `gorm:"foreignKey:ReporterID" json:"-"`
	Comments        []Comment `gorm:"foreignKey:AuthorID" json:"-"`
}

// IsAdmin reports whether the user holds the admin role. Roles are compared
// case-insensitively because seed data has stored both "admin" and "Admin".
func (u *User) IsAdmin() bool {
	return strings.EqualFold(u.Role, "admin")
}
