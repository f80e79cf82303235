package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yunus169/book-review-project-final-project/model"
	bookrepo "github.com/yunus169/book-review-project-final-project/repository/book"
	booksvc "github.com/yunus169/book-review-project-final-project/service/book"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// List books with optional filters
// @Summary      List books
// @Description  Case-sensitive substring filters on title/author/genre, ANDed
// @Tags         books
// @Produce      json
// @Param        title   query  string  false  "title contains"
// @Param        author  query  string  false  "author contains"
// @Param        genre   query  string  false  "genre contains"
// @Success      200  {object}  map[string]any
// @Router       /books [get]
func (h *Controller) List(c echo.Context) error {
	f := model.BookFilter{
		Title:  c.QueryParam("title"),
		Author: c.QueryParam("author"),
		Genre:  c.QueryParam("genre"),
	}
	rows, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"books": rows})
}

// POST /books
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"title": "required", "author": "required", "summary": "required", "genre": "required"},
		})
	}
	if _, err := h.Svc.Create(c.Request().Context(), req.Title, req.Author, req.Summary, req.Genre); err != nil {
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Book added successfully"})
}

// GET /books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if errors.Is(err, bookrepo.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	}
	if err != nil {
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// PUT /books/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	patch := model.BookPatch{Title: req.Title, Author: req.Author, Summary: req.Summary, Genre: req.Genre}
	err = h.Svc.Update(c.Request().Context(), id, patch)
	if errors.Is(err, bookrepo.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	}
	if err != nil {
		h.Log.Error("book update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book updated successfully"})
}

// DELETE /books/:id — cascades to the book's reviews.
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	err = h.Svc.Delete(c.Request().Context(), id)
	if errors.Is(err, bookrepo.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Book not found"})
	}
	if err != nil {
		h.Log.Error("book delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book deleted successfully"})
}

// GET /books/top — at most five, rated books only, ties broken by id.
func (h *Controller) Top(c echo.Context) error {
	rows, err := h.Svc.Top(c.Request().Context())
	if err != nil {
		h.Log.Error("top books error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"top_books": rows})
}
