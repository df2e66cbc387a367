package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/thien06012001/backend/internal/adapter/presenter"
	adminUsecase "github.com/thien06012001/backend/internal/usecase/admin"
)

// Admin handles admin HTTP requests. All routes are behind the admin role
// middleware.
type Admin struct {
	adminService adminUsecase.Service
	logger       *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService adminUsecase.Service, logger *zap.Logger) *Admin {
	return &Admin{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers handles GET /admin/users
func (h *Admin) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserListResponse(users))
}

// DeleteUser handles DELETE /admin/users/:id
func (h *Admin) DeleteUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.adminService.DeleteUser(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// ListEvents handles GET /admin/events
func (h *Admin) ListEvents(c echo.Context) error {
	events, err := h.adminService.ListEvents(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEventListResponse(events))
}

// DeleteEvent handles DELETE /admin/events/:id
func (h *Admin) DeleteEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.adminService.DeleteEvent(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
