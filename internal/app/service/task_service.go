package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Description: input.Description,
		DueDate:     input.DueDate,
		Completed:   input.Completed,
	}

	var ok bool
	if task.Title, ok = normalizeTitle(input.Title); !ok {
		return domain.Task{}, domain.ErrInvalidTaskPayload
	}
	if task.Status, ok = domain.ParseTaskStatus(input.Status); !ok {
		return domain.Task{}, domain.ErrInvalidTaskPayload
	}
	if task.Priority, ok = domain.ParseTaskPriority(input.Priority); !ok {
		return domain.Task{}, domain.ErrInvalidTaskPayload
	}
	if task.Recurrence, ok = domain.ParseRecurrence(input.Recurrence); !ok {
		return domain.Task{}, domain.ErrInvalidTaskPayload
	}
	if task.RecurrenceDays, ok = domain.NormalizeWeekdays(input.RecurrenceDays); !ok {
		return domain.Task{}, domain.ErrInvalidTaskPayload
	}
	if task.Color, ok = normalizeColor(input.Color); !ok {
		return domain.Task{}, domain.ErrInvalidTaskPayload
	}
	task.Tags = domain.NormalizeTags(input.Tags)

	now := timestamp()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	return s.taskRepository.FindOwned(ctx, ownerID, taskID)
}

// UpdateTask merges the supplied fields into the stored task. Concurrent
// updates to the same task are last-write-wins.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.IsEmpty() {
		return domain.Task{}, domain.ErrInvalidTaskPayload
	}

	task, err := s.taskRepository.FindOwned(ctx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	task, err = applyTaskUpdate(task, input)
	if err != nil {
		return domain.Task{}, err
	}
	task.UpdatedAt = timestamp()

	if err := s.taskRepository.UpdateOwned(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	return s.taskRepository.DeleteOwned(ctx, ownerID, taskID)
}

func applyTaskUpdate(task domain.Task, input domain.UpdateTaskInput) (domain.Task, error) {
	// Defaults only apply on create; an update must name a concrete value.
	for _, value := range []*string{input.Status, input.Priority, input.Color, input.Recurrence} {
		if value != nil && strings.TrimSpace(*value) == "" {
			return domain.Task{}, domain.ErrInvalidTaskPayload
		}
	}

	var ok bool
	if input.Title != nil {
		if task.Title, ok = normalizeTitle(*input.Title); !ok {
			return domain.Task{}, domain.ErrInvalidTaskPayload
		}
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if task.Status, ok = domain.ParseTaskStatus(*input.Status); !ok {
			return domain.Task{}, domain.ErrInvalidTaskPayload
		}
	}
	if input.Priority != nil {
		if task.Priority, ok = domain.ParseTaskPriority(*input.Priority); !ok {
			return domain.Task{}, domain.ErrInvalidTaskPayload
		}
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.Color != nil {
		if task.Color, ok = normalizeColor(*input.Color); !ok {
			return domain.Task{}, domain.ErrInvalidTaskPayload
		}
	}
	if input.Recurrence != nil {
		if task.Recurrence, ok = domain.ParseRecurrence(*input.Recurrence); !ok {
			return domain.Task{}, domain.ErrInvalidTaskPayload
		}
	}
	if input.RecurrenceDays != nil {
		if task.RecurrenceDays, ok = domain.NormalizeWeekdays(*input.RecurrenceDays); !ok {
			return domain.Task{}, domain.ErrInvalidTaskPayload
		}
	}
	if input.Tags != nil {
		task.Tags = domain.NormalizeTags(*input.Tags)
	}
	return task, nil
}

func normalizeTitle(value string) (string, bool) {
	title := strings.TrimSpace(value)
	if title == "" || utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return "", false
	}
	return title, true
}

func normalizeColor(value string) (string, bool) {
	color := strings.TrimSpace(value)
	if color == "" {
		return domain.DefaultTaskColor, true
	}
	if len(color) > domain.MaxColorLength {
		return "", false
	}
	return color, true
}
