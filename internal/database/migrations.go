package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes creates the query-critical indexes. AutoMigrate covers column
// shape but not these compound/ordering indexes; listing is sorted on
// tickets.created_at and comments are fetched per ticket ordered by
// created_at.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		name    string
		table   string
		columns string
	}{
		{"idx_tickets_created_at", "tickets", "created_at"},
		{"idx_tickets_reporter_id", "tickets", "reporter_id"},
		{"idx_tickets_assignee_id", "tickets", "assignee_id"},
		{"idx_comments_ticket_created", "comments", "ticket_id, created_at"},
	}

	for _, idx := range indexes {
		sql := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
