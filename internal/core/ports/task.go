package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

// TaskRepository scopes every read and write to an owner. There is no
// unscoped lookup by id.
type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	ListOwned(ctx context.Context, ownerID string) ([]domain.Task, error)
	FindOwned(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	UpdateOwned(ctx context.Context, task domain.Task) error
	DeleteOwned(ctx context.Context, ownerID, taskID string) error
}

type TaskService interface {
	CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}
