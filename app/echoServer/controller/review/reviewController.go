package review

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	reviewrepo "github.com/yunus169/book-review-project-final-project/repository/review"
	reviewsvc "github.com/yunus169/book-review-project-final-project/service/review"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc reviewsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /reviews
func (h *Controller) Create(c echo.Context) error {
	var req CreateReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"user": "required", "rating": "required", "text": "required", "book_id": "required"},
		})
	}
	_, err := h.Svc.Add(c.Request().Context(), req.User, *req.Rating, req.Text, req.BookID)
	if errors.Is(err, reviewrepo.ErrBookNotFound) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "book not found"})
	}
	if err != nil {
		h.Log.Error("review create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Review added successfully"})
}

// GET /reviews
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("review list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": rows})
}

// List reviews for one book with the mean rating
// @Summary      Reviews for a book
// @Description  404 when the book has no reviews (or does not exist)
// @Tags         reviews
// @Produce      json
// @Param        book_id  path  int  true  "book id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /reviews/{book_id} [get]
func (h *Controller) ListForBook(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil || bookID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rows, avg, err := h.Svc.ListForBook(c.Request().Context(), bookID)
	if errors.Is(err, reviewsvc.ErrNoReviews) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No reviews found for this book"})
	}
	if err != nil {
		h.Log.Error("reviews for book error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": rows, "average_rating": avg})
}
