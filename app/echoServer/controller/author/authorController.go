package author

import (
	"log/slog"
	"net/http"
	"net/url"

	authorsvc "github.com/yunus169/book-review-project-final-project/service/author"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authorsvc.Service
	Log *slog.Logger
}

// Proxy an author search to OpenLibrary
// @Summary      Author lookup
// @Description  Relays the upstream JSON verbatim on 200; otherwise the
// @Description  upstream status with a generic message
// @Tags         authors
// @Produce      json
// @Param        name  path  string  true  "author name"
// @Success      200  {object}  map[string]any
// @Router       /author/{name} [get]
func (h *Controller) Lookup(c echo.Context) error {
	// Echo leaves path params escaped; the adapter re-encodes for upstream.
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		name = c.Param("name")
	}
	res, err := h.Svc.Lookup(c.Request().Context(), name)
	if err != nil {
		h.Log.Error("author lookup error", "name", name, "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "author lookup failed"})
	}
	if res.StatusCode != http.StatusOK {
		return c.JSON(res.StatusCode, echo.Map{"message": "Author information not found"})
	}
	// Upstream body passes through untouched.
	return c.JSONBlob(http.StatusOK, res.Body)
}
