package dto

import (
	"strconv"
	"time"

	"github.com/julianmr/helpdesk-api/internal/models"
)

// CommentDTO represents a comment in API responses. IDs are serialized as
// strings and the timestamp key is camelCase for the web client.
type CommentDTO struct {
	ID        string    `json:"id"`
	AuthorID  uint64    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// TicketDTO represents a ticket in API responses, comments nested oldest
// first.
type TicketDTO struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	ReporterID  uint64       `json:"reporter_id"`
	AssigneeID  *uint64      `json:"assignee_id"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Comments    []CommentDTO `json:"comments"`
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        strconv.FormatUint(comment.ID, 10),
		AuthorID:  comment.AuthorID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

// ToTicketDTO converts a Ticket model to TicketDTO. Comments always
// serialize as an array, never null.
func ToTicketDTO(ticket models.Ticket) TicketDTO {
	comments := make([]CommentDTO, len(ticket.Comments))
	for i, comment := range ticket.Comments {
		comments[i] = ToCommentDTO(comment)
	}

	return TicketDTO{
		ID:          strconv.FormatUint(ticket.ID, 10),
		Title:       ticket.Title,
		Description: ticket.Description,
		Priority:    ticket.Priority,
		Status:      ticket.Status,
		ReporterID:  ticket.ReporterID,
		AssigneeID:  ticket.AssigneeID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
		Comments:    comments,
	}
}

// ToTicketListDTO converts a slice of tickets
func ToTicketListDTO(tickets []models.Ticket) []TicketDTO {
	items := make([]TicketDTO, len(tickets))
	for i, ticket := range tickets {
		items[i] = ToTicketDTO(ticket)
	}
	return items
}
