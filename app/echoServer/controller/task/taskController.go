package task

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yunus169/book-review-project-final-project/model"
	taskrepo "github.com/yunus169/book-review-project-final-project/repository/task"
	tasksvc "github.com/yunus169/book-review-project-final-project/service/task"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc tasksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /tasks?completed=true|false
func (h *Controller) List(c echo.Context) error {
	var completed *bool
	if q := c.QueryParam("completed"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "completed must be a boolean"})
		}
		completed = &v
	}
	rows, err := h.Svc.List(completed)
	if err != nil {
		h.Log.Error("task list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /tasks — id is max+1; an empty store yields id 1.
func (h *Controller) Create(c echo.Context) error {
	var req CreateTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"title": "required", "description": "required", "category": "required"},
		})
	}
	t, err := h.Svc.Add(req.Title, req.Description, req.Category)
	if err != nil {
		h.Log.Error("task create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, t)
}

// GET /tasks/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	t, err := h.Svc.Get(id)
	if errors.Is(err, taskrepo.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "task not found"})
	}
	if err != nil {
		h.Log.Error("task detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, t)
}

// PUT /tasks/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	patch := model.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Completed:   req.Completed,
	}
	t, err := h.Svc.Update(id, patch)
	if errors.Is(err, taskrepo.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "task not found"})
	}
	if err != nil {
		h.Log.Error("task update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, t)
}

// PUT /tasks/:id/complete
func (h *Controller) Complete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	t, err := h.Svc.Complete(id)
	if errors.Is(err, taskrepo.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "task not found"})
	}
	if err != nil {
		h.Log.Error("task complete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, t)
}

// DELETE /tasks/:id — 204 whether or not the id existed.
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(id); err != nil {
		h.Log.Error("task delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /tasks/categories
func (h *Controller) Categories(c echo.Context) error {
	cats, err := h.Svc.Categories()
	if err != nil {
		h.Log.Error("task categories error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cats)
}

// GET /tasks/categories/:name — exact match.
func (h *Controller) ListByCategory(c echo.Context) error {
	rows, err := h.Svc.ListByCategory(c.Param("name"))
	if err != nil {
		h.Log.Error("tasks by category error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}
