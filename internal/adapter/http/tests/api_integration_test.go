//go:build integration
// +build integration

package tests

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dbadapter "taskflow/internal/adapter/db"
	"taskflow/internal/adapter/http/dto"
	"taskflow/pkg/apierrors"
)

type APIIntegrationSuite struct {
	IntegrationSuiteBase
}

func TestAPIIntegrationSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationSuite))
}

func (s *APIIntegrationSuite) TestHealth() {
	var got struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/health", "", nil, &got))
	s.Require().True(got.Success)
	s.Require().Equal("ok", got.Message)
}

func (s *APIIntegrationSuite) TestRegisterLoginAndProfile() {
	userID, token := s.register("Amy", "amy@x.io", "secret1")
	s.Require().NotEmpty(token)

	var dup apierrors.JsonErr
	s.Require().Equal(http.StatusConflict, s.do(http.MethodPost, "/api/user/register", "", map[string]string{
		"name": "Amy", "email": "amy@x.io", "password": "secret1",
	}, &dup))
	s.Require().Equal("User already exists", dup.Message)

	var login dto.AuthResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/user/login", "", map[string]string{
		"email": "amy@x.io", "password": "secret1",
	}, &login))
	s.Require().Equal(userID, login.User.ID)
	s.Require().Equal("amy@x.io", login.User.Email)

	var bad apierrors.JsonErr
	s.Require().Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/user/login", "", map[string]string{
		"email": "amy@x.io", "password": "nope",
	}, &bad))
	s.Require().Equal("Invalid email or password", bad.Message)

	var me dto.UserResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/user/me", login.Token, nil, &me))
	s.Require().Equal("Amy", me.User.Name)

	var profile dto.UserResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodPut, "/api/user/profile", token, map[string]string{
		"name": "Amy B", "email": "amy.b@x.io",
	}, &profile))
	s.Require().Equal("amy.b@x.io", profile.User.Email)

	var changed dto.MessageResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodPut, "/api/user/password", token, map[string]string{
		"currentPassword": "secret1", "newPassword": "secret2",
	}, &changed))

	s.Require().Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/user/login", "", map[string]string{
		"email": "amy.b@x.io", "password": "secret1",
	}, nil))
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/user/login", "", map[string]string{
		"email": "amy.b@x.io", "password": "secret2",
	}, nil))
}

func (s *APIIntegrationSuite) TestTaskLifecycleAndOwnership() {
	amyID, amy := s.register("Amy", "amy@x.io", "secret1")
	_, bob := s.register("Bob", "bob@x.io", "secret1")

	var empty dto.TaskListResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/tasks", amy, nil, &empty))
	s.Require().NotNil(empty.Tasks)
	s.Require().Len(empty.Tasks, 0)

	var created dto.TaskResponse
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/tasks", amy, map[string]any{
		"title":          "Standup",
		"priority":       "High",
		"dueDate":        "2026-11-01",
		"completed":      "Yes",
		"recurrence":     "weekly",
		"recurrenceDays": []string{"mon", "Wednesday"},
		"tags":           []string{"work"},
	}, &created))
	task := created.Task
	s.Require().Equal(amyID, task.Owner)
	s.Require().Equal(task.ID, task.LegacyID)
	s.Require().Equal("todo", task.Status)
	s.Require().Equal("High", task.Priority)
	s.Require().True(task.Completed)
	s.Require().Equal("#3b82f6", task.Color)
	s.Require().Equal([]string{"Mon", "Wed"}, task.RecurrenceDays)
	s.Require().Equal("2026-11-01T00:00:00Z", *task.DueDate)

	var second dto.TaskResponse
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/tasks/gp", amy, map[string]any{"title": "Buy milk"}, &second))

	var list dto.TaskListResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/tasks", amy, nil, &list))
	s.Require().Len(list.Tasks, 2)

	var bobList dto.TaskListResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/tasks", bob, nil, &bobList))
	s.Require().Len(bobList.Tasks, 0)

	var notFound apierrors.JsonErr
	s.Require().Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/tasks/"+task.ID, bob, nil, &notFound))
	s.Require().Equal("Task not found", notFound.Message)
	s.Require().Equal(http.StatusNotFound, s.do(http.MethodPut, "/api/tasks/"+task.ID, bob, map[string]any{"title": "hijacked"}, nil))
	s.Require().Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/tasks/"+task.ID, bob, nil, nil))

	var updated dto.TaskResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodPatch, "/api/tasks/"+task.ID+"/gp", amy, map[string]any{
		"status":  "done",
		"dueDate": nil,
	}, &updated))
	s.Require().Equal("done", updated.Task.Status)
	s.Require().Equal("Standup", updated.Task.Title)
	s.Require().Nil(updated.Task.DueDate)
	s.Require().Equal([]string{"work"}, updated.Task.Tags)

	var fetched dto.TaskResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/tasks/"+task.ID, amy, nil, &fetched))
	s.Require().Equal(updated.Task, fetched.Task)

	var deleted dto.MessageResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodDelete, "/api/tasks/"+task.ID, amy, nil, &deleted))
	s.Require().Equal("Task deleted successfully", deleted.Message)
	s.Require().Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/tasks/"+task.ID, amy, nil, nil))
	s.Require().Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/tasks/"+task.ID, amy, nil, nil))
}

func (s *APIIntegrationSuite) TestLongMultiByteDescription() {
	_, amy := s.register("Amy", "amy@x.io", "secret1")
	description := strings.Repeat("漢", 65535)

	var created dto.TaskResponse
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/tasks", amy, map[string]any{
		"title":       "Notes",
		"description": description,
	}, &created))

	var fetched dto.TaskResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/tasks/"+created.Task.ID, amy, nil, &fetched))
	s.Require().Equal(description, fetched.Task.Description)
}

func (s *APIIntegrationSuite) TestProtectedRoutesRequireToken() {
	var got apierrors.JsonErr
	s.Require().Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/tasks", "", nil, &got))
	s.Require().Equal("Not authorized", got.Message)
	s.Require().Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/user/me", "garbage", nil, nil))
}

func (s *APIIntegrationSuite) TestWipeRemovesUsersAndTasks() {
	_, amy := s.register("Amy", "amy@x.io", "secret1")
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/tasks", amy, map[string]any{"title": "x"}, nil))

	result, err := dbadapter.Wipe(context.Background(), s.DB)
	s.Require().NoError(err)
	s.Require().Equal(dbadapter.WipeResult{Users: 1, Tasks: 1}, result)

	s.Require().Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/user/login", "", map[string]string{
		"email": "amy@x.io", "password": "secret1",
	}, nil))
}
