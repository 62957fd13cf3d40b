package dto

type TaskItem struct {
	ID string `json:"id"`
	// LegacyID mirrors ID for clients written against the document-store API.
	LegacyID       string   `json:"_id"`
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

type TaskResponse struct {
	Success bool     `json:"success"`
	Task    TaskItem `json:"task"`
}

type TaskListResponse struct {
	Success bool       `json:"success"`
	Tasks   []TaskItem `json:"tasks"`
}

type CreateTaskRequest struct {
	Title          string   `json:"title" binding:"max=255"`
	Description    *string  `json:"description" binding:"omitempty,max=65535"`
	Status         *string  `json:"status"`
	Priority       *string  `json:"priority"`
	DueDate        *string  `json:"dueDate"`
	Completed      *Truthy  `json:"completed"`
	Color          *string  `json:"color" binding:"omitempty,max=32"`
	Recurrence     *string  `json:"recurrence"`
	RecurrenceDays []string `json:"recurrenceDays" binding:"omitempty,max=7"`
	Tags           []string `json:"tags" binding:"omitempty,max=50,dive,max=64"`
}

type UpdateTaskRequest struct {
	Title          *string   `json:"title" binding:"omitempty,max=255"`
	Description    *string   `json:"description" binding:"omitempty,max=65535"`
	Status         *string   `json:"status"`
	Priority       *string   `json:"priority"`
	DueDate        *string   `json:"dueDate"`
	Completed      *Truthy   `json:"completed"`
	Color          *string   `json:"color" binding:"omitempty,max=32"`
	Recurrence     *string   `json:"recurrence"`
	RecurrenceDays *[]string `json:"recurrenceDays" binding:"omitempty,max=7"`
	Tags           *[]string `json:"tags" binding:"omitempty,max=50,dive,max=64"`
}
