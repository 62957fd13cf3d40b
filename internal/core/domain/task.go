package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

const (
	DefaultTaskColor = "#3b82f6"
	MaxTitleLength   = 255
	MaxColorLength   = 32
)

var weekdays = []struct{ short, long string }{
	{"Mon", "Monday"},
	{"Tue", "Tuesday"},
	{"Wed", "Wednesday"},
	{"Thu", "Thursday"},
	{"Fri", "Friday"},
	{"Sat", "Saturday"},
	{"Sun", "Sunday"},
}

type Task struct {
	ID             string
	OwnerID        string
	Title          string
	Description    string
	Status         TaskStatus
	Priority       TaskPriority
	DueDate        *time.Time
	Completed      bool
	Color          string
	Recurrence     Recurrence
	RecurrenceDays []string
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateTaskInput carries raw client values; empty enum fields fall back to defaults.
type CreateTaskInput struct {
	Title          string
	Description    string
	Status         string
	Priority       string
	DueDate        *time.Time
	Completed      bool
	Color          string
	Recurrence     string
	RecurrenceDays []string
	Tags           []string
}

// UpdateTaskInput is a partial update. Nil pointers are left untouched;
// DueDateSet distinguishes "clear the due date" from "not supplied".
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	DueDate        *time.Time
	DueDateSet     bool
	Completed      *bool
	Color          *string
	Recurrence     *string
	RecurrenceDays *[]string
	Tags           *[]string
}

func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil &&
		in.Description == nil &&
		in.Status == nil &&
		in.Priority == nil &&
		!in.DueDateSet &&
		in.Completed == nil &&
		in.Color == nil &&
		in.Recurrence == nil &&
		in.RecurrenceDays == nil &&
		in.Tags == nil
}

func ParseTaskStatus(value string) (TaskStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "todo":
		return TaskStatusTodo, true
	case "in-progress", "inprogress", "in_progress":
		return TaskStatusInProgress, true
	case "done":
		return TaskStatusDone, true
	}
	return "", false
}

func ParseTaskPriority(value string) (TaskPriority, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "low":
		return TaskPriorityLow, true
	case "medium":
		return TaskPriorityMedium, true
	case "high":
		return TaskPriorityHigh, true
	}
	return "", false
}

func ParseRecurrence(value string) (Recurrence, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return RecurrenceNone, true
	case "daily":
		return RecurrenceDaily, true
	case "weekly":
		return RecurrenceWeekly, true
	case "monthly":
		return RecurrenceMonthly, true
	}
	return "", false
}

// NormalizeWeekdays maps markers such as "mon" or "MONDAY" to "Mon", dropping duplicates.
func NormalizeWeekdays(values []string) ([]string, bool) {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		var day string
		for _, candidate := range weekdays {
			if strings.EqualFold(value, candidate.short) || strings.EqualFold(value, candidate.long) {
				day = candidate.short
				break
			}
		}
		if day == "" {
			return nil, false
		}
		if !seen[day] {
			seen[day] = true
			out = append(out, day)
		}
	}
	return out, true
}

// NormalizeTags trims tags and drops blanks and duplicates, keeping first-seen order.
func NormalizeTags(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}
