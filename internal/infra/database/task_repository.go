package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type TaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

const taskColumns = `id, lead_id, lead_name, description, nature, due_date, completed, created_at`

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, lead_id, lead_name, description, nature, due_date, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		task.ID,
		task.LeadID,
		task.LeadName,
		task.Description,
		task.Nature,
		task.DueDate,
		task.Completed,
		task.CreatedAt,
	)
	return err
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1`, taskColumns)
	task, err := scanTask(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrTaskNotFound
	}
	return task, err
}

func (r *TaskRepository) List(ctx context.Context, filter usecase.TaskFilter) ([]*entity.Task, error) {
	var conditions []string
	var args []interface{}

	if filter.LeadID != "" {
		args = append(args, filter.LeadID)
		conditions = append(conditions, fmt.Sprintf("lead_id = $%d", len(args)))
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		conditions = append(conditions, fmt.Sprintf("completed = $%d", len(args)))
	}
	if filter.OverdueAt != nil {
		args = append(args, *filter.OverdueAt)
		conditions = append(conditions, fmt.Sprintf("due_date < $%d", len(args)))
	}
	if filter.DueOn != nil {
		dayStart := time.Date(filter.DueOn.Year(), filter.DueOn.Month(), filter.DueOn.Day(), 0, 0, 0, 0, filter.DueOn.Location())
		args = append(args, dayStart)
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d", len(args)))
		args = append(args, dayStart.AddDate(0, 0, 1))
		conditions = append(conditions, fmt.Sprintf("due_date < $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks`, taskColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY due_date ASC NULLS LAST, created_at ASC, id ASC"

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

	var tasks []*entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE tasks SET completed = $1 WHERE id = $2`, completed, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) CompleteOpenInteractive(ctx context.Context, leadID string) (int, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE tasks SET completed = TRUE WHERE lead_id = $1 AND completed = FALSE AND nature = $2`,
		leadID, entity.NatureInteractive)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

// DeletePendingFollowups clears the open tasks the AFC itself
// scheduled, leaving user to-dos alone.
func (r *TaskRepository) DeletePendingFollowups(ctx context.Context, leadID string) (int, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM tasks WHERE lead_id = $1 AND completed = FALSE AND description LIKE '%Follow-up%'`,
		leadID)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

func (r *TaskRepository) DeleteEventTasks(ctx context.Context, leadID, eventType string) (int, error) {
	if eventType == "" {
		return 0, nil
	}
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM tasks WHERE lead_id = $1 AND completed = FALSE AND description IN ($2, $3)`,
		leadID,
		fmt.Sprintf("Remind about %s", eventType),
		fmt.Sprintf("Confirm attendance for %s", eventType),
	)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

func (r *TaskRepository) FindOverdueInteractive(ctx context.Context, now time.Time) ([]*entity.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE completed = FALSE AND nature = $1 AND due_date < $2
		ORDER BY due_date ASC
	`, taskColumns)

	rows, err := r.DB.QueryContext(ctx, query, entity.NatureInteractive, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) DeleteByLead(ctx context.Context, leadID string) (int, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE lead_id = $1`, leadID)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

func scanTask(row rowScanner) (*entity.Task, error) {
	var task entity.Task
	var dueDate sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.LeadID,
		&task.LeadName,
		&task.Description,
		&task.Nature,
		&dueDate,
		&task.Completed,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	return &task, nil
}
