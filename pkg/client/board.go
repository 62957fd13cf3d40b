package client

import (
	"context"
	"errors"
	"strings"
	"sync"
)

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

const sessionExpiredMessage = "Session expired, please log in again"

// StatusAll disables the status filter.
const StatusAll = "all"

type Notification struct {
	Kind    NotificationKind
	Message string
}

type Notifier interface {
	Notify(Notification)
}

type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// TaskAPI is the part of Client a Board needs.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, task NewTask) (Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)
	DeleteTask(ctx context.Context, id string) error
}

var _ TaskAPI = (*Client)(nil)

// Board is the local view of the user's task list. Edits are applied locally
// first and rolled back when the server refuses them. A rejected session
// clears the list instead.
type Board struct {
	api      TaskAPI
	notifier Notifier

	mu    sync.Mutex
	tasks []Task
}

func NewBoard(api TaskAPI, notifier Notifier) *Board {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Board{api: api, notifier: notifier, tasks: []Task{}}
}

// Tasks returns a copy of the current list, newest first.
func (b *Board) Tasks() []Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Task{}, b.tasks...)
}

// Load replaces the list with the server's. On failure the previous list is
// kept, unless the session was rejected.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.api.ListTasks(ctx)
	if err != nil {
		b.fail(err, "Failed to fetch tasks")
		return err
	}
	if tasks == nil {
		tasks = []Task{}
	}

	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()
	return nil
}

func (b *Board) Add(ctx context.Context, task NewTask) (Task, error) {
	created, err := b.api.CreateTask(ctx, task)
	if err != nil {
		b.fail(err, "Failed to create task")
		return Task{}, err
	}

	b.mu.Lock()
	b.tasks = append([]Task{created}, b.tasks...)
	b.mu.Unlock()

	b.notify(NotifySuccess, "Task created")
	return created, nil
}

func (b *Board) Patch(ctx context.Context, id string, patch TaskPatch) (Task, error) {
	b.mu.Lock()
	idx := b.indexOf(id)
	var previous Task
	if idx >= 0 {
		previous = b.tasks[idx]
		b.tasks[idx] = patch.Apply(previous)
	}
	b.mu.Unlock()

	updated, err := b.api.UpdateTask(ctx, id, patch)

	b.mu.Lock()
	if i := b.indexOf(id); i >= 0 {
		if err != nil {
			if idx >= 0 {
				b.tasks[i] = previous
			}
		} else {
			b.tasks[i] = updated
		}
	}
	b.mu.Unlock()

	if err != nil {
		b.fail(err, "Failed to update task")
		return Task{}, err
	}
	b.notify(NotifySuccess, "Task updated")
	return updated, nil
}

func (b *Board) Remove(ctx context.Context, id string) error {
	b.mu.Lock()
	idx := b.indexOf(id)
	var removed Task
	if idx >= 0 {
		removed = b.tasks[idx]
		b.tasks = append(b.tasks[:idx:idx], b.tasks[idx+1:]...)
	}
	b.mu.Unlock()

	if err := b.api.DeleteTask(ctx, id); err != nil {
		if idx >= 0 {
			b.mu.Lock()
			b.restore(idx, removed)
			b.mu.Unlock()
		}
		b.fail(err, "Failed to delete task")
		return err
	}

	b.notify(NotifySuccess, "Task deleted")
	return nil
}

// restore puts a task back at its old position, or at the end if the list shrank.
func (b *Board) restore(idx int, task Task) {
	if b.indexOf(task.Key()) >= 0 {
		return
	}
	if idx > len(b.tasks) {
		idx = len(b.tasks)
	}
	b.tasks = append(b.tasks[:idx:idx], append([]Task{task}, b.tasks[idx:]...)...)
}

func (b *Board) indexOf(id string) int {
	for i, task := range b.tasks {
		if task.Key() == id {
			return i
		}
	}
	return -1
}

// Filtered returns the tasks whose status equals status ("" or StatusAll match
// any) and whose title or description contains search, ignoring case.
func (b *Board) Filtered(status, search string) []Task {
	status = strings.TrimSpace(status)
	search = strings.ToLower(strings.TrimSpace(search))

	b.mu.Lock()
	defer b.mu.Unlock()

	out := []Task{}
	for _, task := range b.tasks {
		if status != "" && status != StatusAll && task.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(task.Title), search) &&
			!strings.Contains(strings.ToLower(task.Description), search) {
			continue
		}
		out = append(out, task)
	}
	return out
}

// fail reports a failed call. A rejected session empties the board, since the
// tasks belong to a user who is no longer logged in.
func (b *Board) fail(err error, message string) {
	if errors.Is(err, ErrUnauthorized) {
		b.mu.Lock()
		b.tasks = []Task{}
		b.mu.Unlock()
		b.notify(NotifyError, sessionExpiredMessage)
		return
	}
	b.notify(NotifyError, message)
}

func (b *Board) notify(kind NotificationKind, message string) {
	b.notifier.Notify(Notification{Kind: kind, Message: message})
}
