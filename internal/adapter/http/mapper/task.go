package mapper

import (
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		LegacyID:       task.ID,
		Owner:          task.OwnerID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         string(task.Status),
		Priority:       string(task.Priority),
		Completed:      task.Completed,
		Color:          task.Color,
		Recurrence:     string(task.Recurrence),
		RecurrenceDays: nonNil(task.RecurrenceDays),
		Tags:           nonNil(task.Tags),
		CreatedAt:      task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      task.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if task.DueDate != nil {
		value := task.DueDate.UTC().Format(time.RFC3339)
		item.DueDate = &value
	}

	return item
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
