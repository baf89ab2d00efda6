package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskify/internal/adapter/http/dto"
	"taskify/internal/adapter/http/envelope"
	"taskify/internal/adapter/http/mapper"
	"taskify/internal/adapter/http/middleware"
	"taskify/internal/core/domain"
	"taskify/internal/core/ports"
	"taskify/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns every task, optionally filtered by the status
// query parameter. Blank filters mean unfiltered; unknown names yield
// a failure envelope without touching the store.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	res, err := h.taskService.ListTasks(c.Request.Context(), c.Query("status"))
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	if res.IsFailed() {
		c.JSON(http.StatusBadRequest, envelope.Failure(res.Errors()))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(mapper.ToTaskItems(res.Value())))
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	res, err := h.taskService.GetTaskByID(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("failed to get task", zap.String("task_id", id.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetTask, lang),
		)
		return
	}

	if res.IsFailed() {
		c.JSON(http.StatusBadRequest, envelope.Failure(res.Errors()))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(mapper.ToTaskItem(res.Value())))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	res, err := h.taskService.CreateTask(c.Request.Context(), domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	if res.IsFailed() {
		c.JSON(http.StatusBadRequest, envelope.Failure(res.Errors()))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(mapper.ToTaskItem(res.Value())))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	res, err := h.taskService.UpdateTask(c.Request.Context(), domain.UpdateTaskInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		zap.L().Error("failed to update task", zap.String("task_id", id.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	if res.IsFailed() {
		c.JSON(http.StatusBadRequest, envelope.Failure(res.Errors()))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(mapper.ToTaskItem(res.Value())))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	res, err := h.taskService.DeleteTask(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("failed to delete task", zap.String("task_id", id.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	if res.IsFailed() {
		c.JSON(http.StatusBadRequest, envelope.Failure(res.Errors()))
		return
	}

	// Delete succeeds with no value.
	c.JSON(http.StatusOK, envelope.Success(nil))
}

func parseTaskID(c *gin.Context, lang string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return uuid.UUID{}, false
	}
	return id, true
}
