package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RuanParreira/arquitetura-cebola/internal/api/metrics"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// TaskHandler exposes task CRUD plus the assignee-scoped listings.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List returns every task for admins and only the caller's assigned tasks
// for colaboradores.
func (h *TaskHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.GetTasksForActor(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// MyTasks returns the caller's assigned tasks regardless of role.
func (h *TaskHandler) MyTasks(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.GetTasksByAssignee(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) ListByProject(c echo.Context) error {
	tasks, err := h.service.GetTasksByProject(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetByID(c echo.Context) error {
	task, err := h.service.GetTaskByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.CreateTask(c.Request().Context(), actor, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		Status:      domain.TaskStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("task", "create").Inc()
	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if err := h.service.UpdateTask(c.Request().Context(), actor, c.Param("id"), patch); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("task", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Task updated successfully"})
}

func (h *TaskHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTask(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("task", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}
