package quality

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/reports/audit", h.AuditReport)
}

type auditRequest struct {
	Text string `json:"text"`
}

func (h *Handler) AuditReport(c echo.Context) error {
	var req auditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, Audit(req.Text))
}
