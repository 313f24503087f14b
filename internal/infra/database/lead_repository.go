package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, email, phones, relationship, status, afc_step, has_engaged,
	on_follow_list, insights, traits, notes, commitment_snapshot, last_interaction_date,
	created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	phones, err := json.Marshal(lead.Phones)
	if err != nil {
		return err
	}
	snapshot, err := json.Marshal(lead.CommitmentSnapshot)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leads (id, name, email, phones, relationship, status, afc_step, has_engaged,
			on_follow_list, insights, traits, notes, commitment_snapshot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		phones,
		lead.Relationship,
		lead.Status,
		lead.AFCStep,
		lead.HasEngaged,
		lead.OnFollowList,
		pq.Array(lead.Insights),
		pq.Array(lead.Traits),
		lead.Notes,
		snapshot,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return entity.ErrDuplicateEmail
		}
		log.Printf("critical database error: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1`, leadColumns)
	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE email = $1 LIMIT 1`, leadColumns)
	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) List(ctx context.Context, filter usecase.LeadFilter) ([]*entity.Lead, error) {
	var conditions []string
	var args []interface{}

	if len(filter.Statuses) > 0 {
		args = append(args, pq.Array(filter.Statuses))
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.HasEngaged != nil {
		args = append(args, *filter.HasEngaged)
		conditions = append(conditions, fmt.Sprintf("has_engaged = $%d", len(args)))
	}
	if filter.NamePrefix != "" {
		args = append(args, filter.NamePrefix+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM leads`, leadColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// Stale leads first: that is the order focus mode reviews them in.
	query += " ORDER BY last_interaction_date ASC NULLS FIRST, created_at ASC, id ASC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// updatableLeadColumns whitelists the fields the PATCH surface may
// touch; anything else is rejected before SQL is built.
var updatableLeadColumns = map[string]bool{
	"name":           true,
	"email":          true,
	"notes":          true,
	"relationship":   true,
	"status":         true,
	"on_follow_list": true,
	"insights":       true,
	"traits":         true,
	"phones":         true,
}

func (r *LeadRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	var sets []string
	var args []interface{}

	for column, value := range fields {
		if !updatableLeadColumns[column] {
			return fmt.Errorf("field %q is not updatable", column)
		}

		converted, err := convertLeadField(column, value)
		if err != nil {
			return err
		}
		args = append(args, converted)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE leads SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return ensureFound(result)
}

func (r *LeadRepository) UpdateSnapshot(ctx context.Context, id string, snapshot entity.CommitmentSnapshot) error {
	doc, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET commitment_snapshot = $1, updated_at = NOW() WHERE id = $2`, doc, id)
	if err != nil {
		return err
	}
	return ensureFound(result)
}

func (r *LeadRepository) SetStatus(ctx context.Context, id, status string, afcStep int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = $1, afc_step = $2, updated_at = NOW() WHERE id = $3`, status, afcStep, id)
	if err != nil {
		return err
	}
	return ensureFound(result)
}

func (r *LeadRepository) SetAFCStep(ctx context.Context, id string, step int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET afc_step = $1, updated_at = NOW() WHERE id = $2`, step, id)
	if err != nil {
		return err
	}
	return ensureFound(result)
}

func (r *LeadRepository) MarkEngaged(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET has_engaged = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return ensureFound(result)
}

func (r *LeadRepository) TouchLastInteraction(ctx context.Context, id string, at time.Time) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET last_interaction_date = $1, updated_at = NOW() WHERE id = $2`, at, id)
	if err != nil {
		return err
	}
	return ensureFound(result)
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var phones, snapshot []byte
	var lastInteraction sql.NullTime

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&phones,
		&lead.Relationship,
		&lead.Status,
		&lead.AFCStep,
		&lead.HasEngaged,
		&lead.OnFollowList,
		pq.Array(&lead.Insights),
		pq.Array(&lead.Traits),
		&lead.Notes,
		&snapshot,
		&lastInteraction,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(phones) > 0 {
		if err := json.Unmarshal(phones, &lead.Phones); err != nil {
			return nil, err
		}
	}
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &lead.CommitmentSnapshot); err != nil {
			return nil, err
		}
	}
	if lastInteraction.Valid {
		lead.LastInteractionDate = &lastInteraction.Time
	}

	return &lead, nil
}

func convertLeadField(column string, value interface{}) (interface{}, error) {
	switch column {
	case "insights", "traits":
		items, err := toStringSlice(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", column, err)
		}
		return pq.Array(items), nil
	case "phones":
		doc, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("phones: %w", err)
		}
		return doc, nil
	default:
		return value, nil
	}
}

func toStringSlice(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("expected an array of strings")
			}
			items = append(items, s)
		}
		return items, nil
	default:
		return nil, errors.New("expected an array of strings")
	}
}

func ensureFound(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}
