package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/adapter/http/validation"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID := middleware.GetUserID(c)

	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list tasks", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{Success: true, Tasks: mapper.ToTaskItems(tasks)})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	userID := middleware.GetUserID(c)
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		respondError(c, err, "failed to get task", zap.String("user_id", userID), zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{Success: true, Task: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req dto.CreateTaskRequest
	raw, err := readJSON(c, &req)
	if err != nil {
		abortWithPayloadError(c, err)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err, "failed to create task", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResponse{Success: true, Task: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := middleware.GetUserID(c)
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := readJSON(c, &req)
	if err != nil {
		abortWithPayloadError(c, err)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, input)
	if err != nil {
		respondError(c, err, "failed to update task", zap.String("user_id", userID), zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{Success: true, Task: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := middleware.GetUserID(c)
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		respondError(c, err, "failed to delete task", zap.String("user_id", userID), zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: translate(c, apierrors.MsgTaskDeleted)})
}

func taskIDParam(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return "", false
	}
	return id.String(), true
}

func abortWithPayloadError(c *gin.Context, err error) {
	if errors.Is(err, errMalformedJSON) {
		abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidJSON)
		return
	}
	abortWithMessage(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
}
