package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/thien06012001/backend/errors"
	userdto "github.com/thien06012001/backend/internal/adapter/dto/user"
	"github.com/thien06012001/backend/internal/adapter/presenter"
	userUsecase "github.com/thien06012001/backend/internal/usecase/user"
)

// User handles user HTTP requests
type User struct {
	userService userUsecase.Service
	logger      *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService userUsecase.Service, logger *zap.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// GetUser handles GET /users/:id
func (h *User) GetUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponse(user))
}

// UpdateUser handles PUT /users/:id. Users may only update themselves.
func (h *User) UpdateUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if caller != id {
		return HandleError(h.logger, c, apperrors.ErrPermissionDenied("update another user"))
	}

	var req userdto.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), id, userUsecase.UpdateUserInput{
		Username:  req.Username,
		Name:      req.Name,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
		Password:  req.Password,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponse(user))
}

// GetOwnedEvents handles GET /users/:id/events
func (h *User) GetOwnedEvents(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	events, err := h.userService.GetOwnedEvents(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEventListResponse(events))
}

// GetJoinedEvents handles GET /users/:id/joined-events
func (h *User) GetJoinedEvents(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	events, err := h.userService.GetJoinedEvents(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEventListResponse(events))
}
