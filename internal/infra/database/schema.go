package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phones JSONB NOT NULL DEFAULT '[]'::jsonb,
		relationship TEXT NOT NULL DEFAULT 'Lead',
		status TEXT NOT NULL DEFAULT 'Active',
		afc_step INTEGER NOT NULL DEFAULT 0,
		has_engaged BOOLEAN NOT NULL DEFAULT FALSE,
		on_follow_list BOOLEAN NOT NULL DEFAULT FALSE,
		insights TEXT[] NOT NULL DEFAULT '{}',
		traits TEXT[] NOT NULL DEFAULT '{}',
		notes TEXT NOT NULL DEFAULT '',
		commitment_snapshot JSONB NOT NULL DEFAULT '{}'::jsonb,
		last_interaction_date TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_email ON leads(email) WHERE email <> ''`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status)`,

	`CREATE TABLE IF NOT EXISTS interactions (
		id TEXT PRIMARY KEY,
		lead_id TEXT NOT NULL,
		quick_log_type TEXT NOT NULL DEFAULT '',
		feedback JSONB,
		outcome TEXT NOT NULL DEFAULT '',
		follow_up_date TIMESTAMP WITH TIME ZONE,
		event_details JSONB,
		notes TEXT NOT NULL DEFAULT '',
		system BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_lead_id ON interactions(lead_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		lead_id TEXT NOT NULL DEFAULT '',
		lead_name TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		nature TEXT NOT NULL CHECK (nature IN ('Interactive', 'Procedural')),
		due_date TIMESTAMP WITH TIME ZONE,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_lead_id ON tasks(lead_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(completed, due_date)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		doc JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables on startup. Idempotent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
