package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

var ErrInvalidTaskPayload = domain.ErrInvalidTaskPayload

var taskUpdateFields = []string{
	"title",
	"description",
	"status",
	"priority",
	"dueDate",
	"completed",
	"color",
	"recurrence",
	"recurrenceDays",
	"tags",
}

// Fields that may not be sent as an explicit JSON null.
var nonNullableFields = []string{"title", "status", "priority", "color", "recurrence"}

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	for _, field := range nonNullableFields {
		if value, ok := jsonField(raw, field); ok && isJSONNull(value) {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:          title,
		Description:    deref(req.Description),
		Status:         deref(req.Status),
		Priority:       deref(req.Priority),
		DueDate:        dueDate,
		Color:          deref(req.Color),
		Recurrence:     deref(req.Recurrence),
		RecurrenceDays: req.RecurrenceDays,
		Tags:           req.Tags,
	}
	if req.Completed != nil {
		input.Completed = bool(*req.Completed)
	}

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	for _, field := range nonNullableFields {
		if value, ok := jsonField(raw, field); ok && isJSONNull(value) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	input := domain.UpdateTaskInput{
		Title:      req.Title,
		Status:     req.Status,
		Priority:   req.Priority,
		Color:      req.Color,
		Recurrence: req.Recurrence,
	}

	if hasJSONField(raw, "description") {
		value := deref(req.Description)
		input.Description = &value
	}

	if hasJSONField(raw, "dueDate") {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = dueDate
		input.DueDateSet = true
	}

	if hasJSONField(raw, "completed") {
		value := req.Completed != nil && bool(*req.Completed)
		input.Completed = &value
	}

	if hasJSONField(raw, "recurrenceDays") {
		days := []string{}
		if req.RecurrenceDays != nil {
			days = *req.RecurrenceDays
		}
		input.RecurrenceDays = &days
	}

	if hasJSONField(raw, "tags") {
		tags := []string{}
		if req.Tags != nil {
			tags = *req.Tags
		}
		input.Tags = &tags
	}

	return input, nil
}

// parseDueDate accepts a calendar date or an RFC3339 timestamp. Nil and the
// empty string both mean "no due date".
func parseDueDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	raw := strings.TrimSpace(*value)

	if parsed, err := time.Parse(time.DateOnly, raw); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, errors.New("invalid due date")
	}
	parsed = parsed.UTC()
	return &parsed, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range taskUpdateFields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := jsonField(raw, field)
	return ok
}

// jsonField looks a key up case-insensitively, the way encoding/json matches
// keys to struct fields.
func jsonField(raw map[string]json.RawMessage, field string) (json.RawMessage, bool) {
	if value, ok := raw[field]; ok {
		return value, true
	}
	for key, value := range raw {
		if strings.EqualFold(key, field) {
			return value, true
		}
	}
	return nil, false
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
