package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the read-only section catalog so clients can render the
// questionnaire from the same data the compiler uses.
type Handler struct{}

// NewHandler creates a catalog handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the catalog endpoints on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/catalog/history", h.ListHistory)
	api.GET("/catalog/exam", h.ListExam)
}

// ListHistory returns the history sections, optionally filtered by ?sex=.
func (h *Handler) ListHistory(c echo.Context) error {
	if raw := c.QueryParam("sex"); raw != "" {
		sex := Sex(raw)
		if !sex.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid sex")
		}
		return c.JSON(http.StatusOK, EligibleHistory(sex))
	}
	return c.JSON(http.StatusOK, HistorySections)
}

// ListExam returns the exam sections with their sub-finding definitions.
func (h *Handler) ListExam(c echo.Context) error {
	return c.JSON(http.StatusOK, ExamSections)
}
