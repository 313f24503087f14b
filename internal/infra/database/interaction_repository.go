package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

// InteractionRepository is insert-only by design: the interaction log
// is an append-only history. The only delete path is the lead cascade.
type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Append(ctx context.Context, interaction *entity.Interaction) error {
	var feedback, eventDetails []byte
	var err error

	if interaction.Feedback != nil {
		if feedback, err = json.Marshal(interaction.Feedback); err != nil {
			return err
		}
	}
	if interaction.EventDetails != nil {
		if eventDetails, err = json.Marshal(interaction.EventDetails); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO interactions (id, lead_id, quick_log_type, feedback, outcome, follow_up_date,
			event_details, notes, system, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.DB.ExecContext(ctx, query,
		interaction.ID,
		interaction.LeadID,
		interaction.QuickLogType,
		nullBytes(feedback),
		interaction.Outcome,
		interaction.FollowUpDate,
		nullBytes(eventDetails),
		interaction.Notes,
		interaction.System,
		interaction.CreatedAt,
	)
	return err
}

func (r *InteractionRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.Interaction, error) {
	query := `
		SELECT id, lead_id, quick_log_type, feedback, outcome, follow_up_date,
			event_details, notes, system, created_at
		FROM interactions
		WHERE lead_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []*entity.Interaction
	for rows.Next() {
		var in entity.Interaction
		var feedback, eventDetails []byte
		var followUp sql.NullTime

		err := rows.Scan(
			&in.ID,
			&in.LeadID,
			&in.QuickLogType,
			&feedback,
			&in.Outcome,
			&followUp,
			&eventDetails,
			&in.Notes,
			&in.System,
			&in.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if len(feedback) > 0 {
			if err := json.Unmarshal(feedback, &in.Feedback); err != nil {
				return nil, err
			}
		}
		if len(eventDetails) > 0 {
			if err := json.Unmarshal(eventDetails, &in.EventDetails); err != nil {
				return nil, err
			}
		}
		if followUp.Valid {
			in.FollowUpDate = &followUp.Time
		}

		interactions = append(interactions, &in)
	}
	return interactions, rows.Err()
}

func (r *InteractionRepository) DeleteByLead(ctx context.Context, leadID string) (int, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM interactions WHERE lead_id = $1`, leadID)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

func nullBytes(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
