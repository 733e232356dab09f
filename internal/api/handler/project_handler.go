package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RuanParreira/arquitetura-cebola/internal/api/metrics"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// ProjectHandler exposes project CRUD. Reads are open to any authenticated
// user; the service decides who may write.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.GetAllProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetByID(c echo.Context) error {
	project, err := h.service.GetProjectByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.CreateProject(c.Request().Context(), actor, ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "create").Inc()
	return c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.ProjectPatch{Name: req.Name, Description: req.Description}
	if err := h.service.UpdateProject(c.Request().Context(), actor, c.Param("id"), patch); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Project updated successfully"})
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProject(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Project deleted successfully"})
}
