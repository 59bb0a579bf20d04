package identity

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radreport/radreport/internal/platform/auth"
	"github.com/radreport/radreport/pkg/pagination"
)

type Handler struct {
	svc   *Service
	trail *AuditTrail
}

func NewHandler(svc *Service, trail *AuditTrail) *Handler {
	return &Handler{svc: svc, trail: trail}
}

// RegisterPublicRoutes mounts endpoints that must work without a token.
func (h *Handler) RegisterPublicRoutes(root *echo.Group) {
	root.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	admin := auth.RequireRole("admin")
	api.GET("/audit-log", h.ListAuditLog, admin)
	api.GET("/users", h.ListUsers, admin)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, u, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  u,
	})
}

func (h *Handler) ListAuditLog(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.trail.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*AuditLogEntry{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if users == nil {
		users = []*User{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"users": users, "count": len(users)})
}
