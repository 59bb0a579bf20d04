package findings

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/findings/critical", h.CheckCritical)
	api.POST("/findings/differentials", h.SuggestDifferentials)
	api.GET("/findings/normal-values/:region", h.GetNormalValues)
}

type checkRequest struct {
	Text     string `json:"text"`
	Modality string `json:"modality"`
}

func (h *Handler) CheckCritical(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Modality == "" {
		req.Modality = "MRI"
	}
	results := FindCritical(req.Text, req.Modality)
	if results == nil {
		results = []CriticalFinding{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"findings": results,
		"count":    len(results),
	})
}

func (h *Handler) SuggestDifferentials(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	results := SuggestDifferentials(req.Text, req.Modality)
	if results == nil {
		results = []Differential{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"differentials": results,
		"count":         len(results),
	})
}

func (h *Handler) GetNormalValues(c echo.Context) error {
	region := c.Param("region")
	values := NormalValuesFor(region)
	if values == nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown region")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"region": region,
		"values": values,
		"text":   NormalValuesText(region),
	})
}
