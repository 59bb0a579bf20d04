package report

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/radreport/radreport/internal/platform/auth"
)

type Handler struct {
	svc     *Service
	applier TemplateApplier
}

func NewHandler(svc *Service, applier TemplateApplier) *Handler {
	return &Handler{svc: svc, applier: applier}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	write := auth.RequireRole("radiologist", "admin")

	api.GET("/draft", h.GetDraft)
	api.PUT("/draft", h.SaveDraft, write)
	api.DELETE("/draft", h.ClearDraft, write)
	api.POST("/draft/apply/:name", h.ApplyTemplate, write)

	api.POST("/reports/assemble", h.AssembleReport, write)
	api.POST("/reports/generate", h.GenerateReport, write)
	api.POST("/reports/batch", h.BatchReports, write)
}

func (h *Handler) GetDraft(c echo.Context) error {
	ctx := c.Request().Context()
	d, err := h.svc.GetDraft(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

type draftRequest struct {
	Text string `json:"text"`
}

func (h *Handler) SaveDraft(c echo.Context) error {
	var req draftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	d, err := h.svc.SaveDraft(ctx, auth.UserIDFromContext(ctx), req.Text)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ClearDraft(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.svc.ClearDraft(ctx, auth.UserIDFromContext(ctx)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ApplyTemplate(c echo.Context) error {
	ctx := c.Request().Context()
	d, err := h.svc.ApplyTemplate(ctx, h.applier, c.Param("name"), auth.UserIDFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

type assembleRequest struct {
	PatientInfo   PatientInfo   `json:"patient_info"`
	TechniqueInfo TechniqueInfo `json:"technique_info"`
	Draft         string        `json:"draft"`
}

func (h *Handler) AssembleReport(c echo.Context) error {
	var req assembleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	r := h.svc.Assemble(req.PatientInfo, req.TechniqueInfo, req.Draft, auth.UserIDFromContext(ctx))
	return c.JSON(http.StatusOK, r)
}

type generateRequest struct {
	TechniqueInfo TechniqueInfo `json:"technique_info"`
	Draft         string        `json:"draft"`
}

func (h *Handler) GenerateReport(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	text, err := h.svc.Generate(ctx, req.TechniqueInfo, req.Draft, auth.UserIDFromContext(ctx))
	if err != nil {
		// External-service failure is recoverable: surface it, leave state alone
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if text == "" {
		return c.JSON(http.StatusOK, map[string]string{"report": "", "message": "draft is empty"})
	}
	return c.JSON(http.StatusOK, map[string]string{"report": text})
}

type batchRequest struct {
	CSV      string `json:"csv"`
	Template string `json:"template"`
}

func (h *Handler) BatchReports(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	results, err := h.svc.Batch(ctx, strings.NewReader(req.CSV), req.Template, auth.UserIDFromContext(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if results == nil {
		results = []BatchResult{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"results": results, "count": len(results)})
}
