package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const taskColumns = `id, owner_id, title, description, status, priority, due_date, completed,
  color, recurrence, recurrence_days, tags, created_at, updated_at`

const (
	insertTaskQuery = `
INSERT INTO tasks (` + taskColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	listOwnedTasksQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE owner_id = ?
ORDER BY created_at DESC, id DESC;
`
	findOwnedTaskQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = ? AND owner_id = ?;
`
	updateOwnedTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, completed = ?,
    color = ?, recurrence = ?, recurrence_days = ?, tags = ?, updated_at = ?
WHERE id = ? AND owner_id = ?;
`
	deleteOwnedTaskQuery = `DELETE FROM tasks WHERE id = ? AND owner_id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             string       `db:"id"`
	OwnerID        string       `db:"owner_id"`
	Title          string       `db:"title"`
	Description    string       `db:"description"`
	Status         string       `db:"status"`
	Priority       string       `db:"priority"`
	DueDate        sql.NullTime `db:"due_date"`
	Completed      bool         `db:"completed"`
	Color          string       `db:"color"`
	Recurrence     string       `db:"recurrence"`
	RecurrenceDays stringList   `db:"recurrence_days"`
	Tags           stringList   `db:"tags"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		nullTime(task.DueDate),
		task.Completed,
		task.Color,
		string(task.Recurrence),
		stringList(task.RecurrenceDays),
		stringList(task.Tags),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListOwned(ctx context.Context, ownerID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listOwnedTasksQuery, ownerID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

// FindOwned is the single ownership predicate: a task that exists but
// belongs to someone else is reported exactly like a missing one.
func (r *TaskRepository) FindOwned(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findOwnedTaskQuery, taskID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) UpdateOwned(ctx context.Context, task domain.Task) error {
	res, err := r.db.ExecContext(ctx, updateOwnedTaskQuery,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		nullTime(task.DueDate),
		task.Completed,
		task.Color,
		string(task.Recurrence),
		stringList(task.RecurrenceDays),
		stringList(task.Tags),
		task.UpdatedAt,
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteOwned(ctx context.Context, ownerID, taskID string) error {
	res, err := r.db.ExecContext(ctx, deleteOwnedTaskQuery, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		Title:          row.Title,
		Description:    row.Description,
		Status:         domain.TaskStatus(row.Status),
		Priority:       domain.TaskPriority(row.Priority),
		Completed:      row.Completed,
		Color:          row.Color,
		Recurrence:     domain.Recurrence(row.Recurrence),
		RecurrenceDays: []string(row.RecurrenceDays),
		Tags:           []string(row.Tags),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
