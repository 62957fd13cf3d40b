package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type Task struct {
	ID             string   `json:"id"`
	LegacyID       string   `json:"_id,omitempty"`
	Owner          string   `json:"owner"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	DueDate        *string  `json:"dueDate"`
	Completed      bool     `json:"completed"`
	Color          string   `json:"color"`
	Recurrence     string   `json:"recurrence"`
	RecurrenceDays []string `json:"recurrenceDays"`
	Tags           []string `json:"tags"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// Key is the task id, falling back to the legacy "_id" field.
func (t Task) Key() string {
	if t.ID != "" {
		return t.ID
	}
	return t.LegacyID
}

type NewTask struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	DueDate        string   `json:"dueDate,omitempty"`
	Completed      bool     `json:"completed,omitempty"`
	Color          string   `json:"color,omitempty"`
	Recurrence     string   `json:"recurrence,omitempty"`
	RecurrenceDays []string `json:"recurrenceDays,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// TaskPatch is a partial update. Nil fields are not sent; ClearDueDate sends
// an explicit null for dueDate.
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	DueDate        *string
	ClearDueDate   bool
	Completed      *bool
	Color          *string
	Recurrence     *string
	RecurrenceDays *[]string
	Tags           *[]string
}

func (p TaskPatch) MarshalJSON() ([]byte, error) {
	body := map[string]any{}
	setIf(body, "title", p.Title)
	setIf(body, "description", p.Description)
	setIf(body, "status", p.Status)
	setIf(body, "priority", p.Priority)
	setIf(body, "dueDate", p.DueDate)
	if p.ClearDueDate {
		body["dueDate"] = nil
	}
	setIf(body, "completed", p.Completed)
	setIf(body, "color", p.Color)
	setIf(body, "recurrence", p.Recurrence)
	setIf(body, "recurrenceDays", p.RecurrenceDays)
	setIf(body, "tags", p.Tags)
	return json.Marshal(body)
}

// Apply merges the patch into t the way the server would, without normalisation.
func (p TaskPatch) Apply(t Task) Task {
	assign(&t.Title, p.Title)
	assign(&t.Description, p.Description)
	assign(&t.Status, p.Status)
	assign(&t.Priority, p.Priority)
	if p.DueDate != nil {
		value := *p.DueDate
		t.DueDate = &value
	}
	if p.ClearDueDate {
		t.DueDate = nil
	}
	assign(&t.Completed, p.Completed)
	assign(&t.Color, p.Color)
	assign(&t.Recurrence, p.Recurrence)
	if p.RecurrenceDays != nil {
		t.RecurrenceDays = append([]string{}, *p.RecurrenceDays...)
	}
	if p.Tags != nil {
		t.Tags = append([]string{}, *p.Tags...)
	}
	return t
}

func setIf[T any](body map[string]any, key string, value *T) {
	if value != nil {
		body[key] = *value
	}
}

func assign[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

type taskResponse struct {
	Task Task `json:"task"`
}

// ListTasks accepts both {"tasks": [...]} and a bare array. Anything else
// decodes to an empty list.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	raw, err := c.send(ctx, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}
	return decodeTaskList(raw), nil
}

func (c *Client) GetTask(ctx context.Context, id string) (Task, error) {
	var resp taskResponse
	if err := c.do(ctx, http.MethodGet, taskPath(id), nil, &resp); err != nil {
		return Task{}, err
	}
	return resp.Task, nil
}

func (c *Client) CreateTask(ctx context.Context, task NewTask) (Task, error) {
	var resp taskResponse
	if err := c.do(ctx, http.MethodPost, "/tasks", task, &resp); err != nil {
		return Task{}, err
	}
	return resp.Task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error) {
	var resp taskResponse
	if err := c.do(ctx, http.MethodPut, taskPath(id), patch, &resp); err != nil {
		return Task{}, err
	}
	return resp.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

func decodeTaskList(raw []byte) []Task {
	raw = bytes.TrimSpace(raw)

	var tasks []Task
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &tasks); err == nil {
			return tasks
		}
		return []Task{}
	}

	var wrapped struct {
		Tasks json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return []Task{}
	}
	if err := json.Unmarshal(wrapped.Tasks, &tasks); err != nil || tasks == nil {
		return []Task{}
	}
	return tasks
}
