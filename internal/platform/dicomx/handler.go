package dicomx

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// MaxUploadBytes bounds DICOM uploads; headers alone are small.
const MaxUploadBytes = 64 << 20

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/dicom/extract", h.ExtractMetadata)
}

// ExtractMetadata accepts a multipart "file" field and returns the
// extracted metadata with pre-mapped patient and technique info.
func (h *Handler) ExtractMetadata(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}
	if fh.Size > MaxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	m, err := Extract(f, fh.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid DICOM file")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"metadata":       m,
		"patient_info":   m.ToPatientInfo(time.Now()),
		"technique_info": m.ToTechniqueInfo(),
	})
}
