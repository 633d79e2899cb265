package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/julianmr/helpdesk-api/internal/auth"
	"github.com/julianmr/helpdesk-api/internal/constants"
	"github.com/julianmr/helpdesk-api/internal/models"
	"github.com/julianmr/helpdesk-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin creates the bootstrap admin account, or repairs it: if the
// default password no longer verifies the hash is reset, and the role is
// forced back to admin. Runs at initdb and at server startup so a locked-out
// installation always has a way in.
func EnsureAdmin(db *gorm.DB) error {
	users := repository.NewUserRepository(db)

	admin, err := users.FindByUsername(constants.AdminUsername)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := auth.HashPassword(constants.AdminDefaultPassword)
		if err != nil {
			return err
		}
		admin := &models.User{
			Username:     constants.AdminUsername,
			FullName:     "System Administrator",
			PasswordHash: hash,
			Role:         constants.AdminRole,
		}
		if err := users.Create(admin); err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		slog.Info("admin user created", "username", constants.AdminUsername)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	// The repair check is bcrypt-only on purpose: a legacy sha256 or
	// plaintext admin hash still verifies at login, but gets upgraded to
	// bcrypt here.
	hash := admin.PasswordHash
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(constants.AdminDefaultPassword)) != nil {
		hash, err = auth.HashPassword(constants.AdminDefaultPassword)
		if err != nil {
			return err
		}
		slog.Info("admin password reset to default")
	}
	if hash == admin.PasswordHash && admin.Role == constants.AdminRole {
		return nil
	}
	return users.UpdateCredentials(constants.AdminUsername, hash, constants.AdminRole)
}

// Seed loads a small demo data set. Passwords are bcrypt-hashed before
// insertion even though the verifier would also accept them in plaintext.
func Seed(db *gorm.DB) error {
	users := repository.NewUserRepository(db)
	tickets := repository.NewTicketRepository(db)

	type seedUser struct {
		username string
		fullName string
		password string
		role     string
	}
	seedUsers := []seedUser{
		{"julian", "Julian Martinez", "julian123", "agent"},
		{"carla", "Carla Ruiz", "carla123", "user"},
	}

	ids := make(map[string]uint64, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := users.FindByUsername(su.username)
		if err == nil {
			ids[su.username] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check seed user %s: %w", su.username, err)
		}

		hash, err := auth.HashPassword(su.password)
		if err != nil {
			return err
		}
		user := &models.User{
			Username:     su.username,
			FullName:     su.fullName,
			PasswordHash: hash,
			Role:         su.role,
		}
		if err := users.Create(user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.username, err)
		}
		ids[su.username] = user.ID
		slog.Info("seeded user", "username", su.username)
	}

	var ticketCount int64
	if err := db.Model(&models.Ticket{}).Count(&ticketCount).Error; err != nil {
		return err
	}
	if ticketCount > 0 {
		return nil
	}

	ticket := &models.Ticket{
		Title:       "Printer on floor 2 keeps jamming",
		Description: "Paper jams on every duplex job since Monday.",
		Priority:    "high",
		Status:      models.DefaultStatus,
		ReporterID:  ids["carla"],
	}
	if err := tickets.Create(ticket); err != nil {
		return fmt.Errorf("failed to seed ticket: %w", err)
	}

	comment := &models.Comment{
		TicketID: ticket.ID,
		AuthorID: ids["julian"],
		Text:     "Taking a look this afternoon.",
	}
	if err := tickets.AddComment(comment); err != nil {
		return fmt.Errorf("failed to seed comment: %w", err)
	}

	slog.Info("seed data loaded")
	return nil
}
