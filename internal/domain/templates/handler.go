package templates

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/radreport/radreport/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	write := auth.RequireRole("radiologist", "admin")

	api.GET("/templates", h.ListTemplates)
	api.GET("/templates/recommend", h.RecommendTemplates)
	api.POST("/templates", h.SaveTemplate, write)
	api.DELETE("/templates/:name", h.DeleteTemplate, write)
}

type saveRequest struct {
	Name        string      `json:"name"`
	Content     string      `json:"content"`
	SectionType SectionType `json:"section_type"`
}

func (h *Handler) SaveTemplate(c echo.Context) error {
	var req saveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	t, err := h.svc.Save(ctx, req.Name, req.Content, req.SectionType, auth.UserIDFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListTemplates(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.svc.ListByOwner(ctx, auth.UserIDFromContext(ctx), auth.HasRole(ctx, "admin"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Template{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"templates": items, "count": len(items)})
}

func (h *Handler) DeleteTemplate(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.svc.Delete(ctx, c.Param("name"), auth.UserIDFromContext(ctx)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RecommendTemplates(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	names, err := h.svc.Recommend(c.Request().Context(), c.QueryParam("text"), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"recommendations": names})
}
