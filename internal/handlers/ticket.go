package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/julianmr/helpdesk-api/internal/dto"
	apierrors "github.com/julianmr/helpdesk-api/internal/errors"
	"github.com/julianmr/helpdesk-api/internal/middleware"
	"github.com/julianmr/helpdesk-api/internal/services"
)

// TicketHandler coordinates ticket and comment HTTP handlers.
type TicketHandler struct {
	ticketService *services.TicketService
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(ticketService *services.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// ListTickets returns every ticket, newest first, comments nested.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.ticketService.ListTickets()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tickets")
		return
	}
	c.JSON(http.StatusOK, dto.ToTicketListDTO(tickets))
}

// CreateTicket opens a new ticket reported by the current user.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	type CreateTicketRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.ticketService.CreateTicket(services.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		ReporterID:  user.ID,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create ticket")
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketDTO(*ticket))
}

// UpdateTicket applies a partial update. The raw body is decoded key by key
// so a field that is absent stays untouched while a field explicitly set to
// null is written as NULL.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fields := make(map[string]any, len(body))
	for _, key := range []string{"title", "description", "priority", "status"} {
		raw, present := body[key]
		if !present {
			continue
		}
		var value *string
		if err := json.Unmarshal(raw, &value); err != nil {
			apierrors.BadRequest(c, "Invalid value for "+key)
			return
		}
		fields[key] = value
	}
	if raw, present := body["assignee_id"]; present {
		var value *uint64
		if err := json.Unmarshal(raw, &value); err != nil {
			apierrors.BadRequest(c, "Invalid value for assignee_id")
			return
		}
		fields["assignee_id"] = value
	}

	ticket, err := h.ticketService.UpdateTicket(id, fields)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			apierrors.NotFound(c, "Ticket not found")
			return
		}
		apierrors.InternalError(c, "Failed to update ticket")
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketDTO(*ticket))
}

// DeleteTicket removes a ticket and its comments.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}

	if err := h.ticketService.DeleteTicket(id); err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			apierrors.NotFound(c, "Ticket not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete ticket")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AddComment appends a comment to a ticket and returns it standalone.
func (h *TicketHandler) AddComment(c *gin.Context) {
	type AddCommentRequest struct {
		Text string `json:"text"`
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := ticketID(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.ticketService.AddComment(id, user.ID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCommentTextRequired):
			apierrors.MissingField(c, "text")
		case errors.Is(err, services.ErrTicketNotFound):
			apierrors.NotFound(c, "Ticket not found")
		default:
			apierrors.InternalError(c, "Failed to add comment")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTO(*comment))
}

// ticketID parses the :id path parameter. A non-numeric id cannot match any
// ticket, so it reports not-found.
func ticketID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Ticket not found")
		return 0, false
	}
	return id, true
}
