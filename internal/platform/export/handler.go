package export

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/radreport/radreport/internal/domain/report"
	"github.com/radreport/radreport/internal/platform/auth"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type Handler struct {
	branding Branding
}

func NewHandler(branding Branding) *Handler {
	return &Handler{branding: branding}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/reports/export", h.ExportReport, auth.RequireRole("radiologist", "admin"))
}

type exportRequest struct {
	Text        string             `json:"text"`
	PatientInfo report.PatientInfo `json:"patient_info"`
	Date        string             `json:"date"`
	Format      string             `json:"format"`
}

// ExportReport serializes report text and returns either the neutral
// document structure (format=json) or rendered DOCX bytes.
func (h *Handler) ExportReport(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	doc := Serialize(req.Text, req.PatientInfo, req.Date, auth.UserIDFromContext(ctx), h.branding, time.Now())

	if req.Format == "json" {
		return c.JSON(http.StatusOK, doc)
	}

	data, err := RenderDOCX(doc)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	name := "radiology_report.docx"
	if req.PatientInfo.ID != "" {
		name = "RAD_" + req.PatientInfo.ID + ".docx"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, docxContentType, data)
}
