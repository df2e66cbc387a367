package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/thien06012001/backend/internal/adapter/dto/common"
	notificationUsecase "github.com/thien06012001/backend/internal/usecase/notification"
)

// Notification handles notification HTTP requests
type Notification struct {
	notificationService notificationUsecase.Service
	logger              *zap.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService notificationUsecase.Service, logger *zap.Logger) *Notification {
	return &Notification{
		notificationService: notificationService,
		logger:              logger,
	}
}

// GetMyNotifications handles GET /notifications. Fetching the inbox marks
// everything as read.
func (h *Notification) GetMyNotifications(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	notifications, err := h.notificationService.GetUserNotifications(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, notifications)
}

// GetUnread handles GET /notifications/unread
func (h *Notification) GetUnread(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	notifications, err := h.notificationService.GetUnreadNotifications(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, notifications)
}

// CountUnread handles GET /notifications/unread/count
func (h *Notification) CountUnread(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	count, err := h.notificationService.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &common.CountResponse{Count: count})
}

// MarkAsRead handles POST /notifications/:id/read
func (h *Notification) MarkAsRead(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.notificationService.MarkAsRead(c.Request().Context(), id, caller); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// MarkAllAsRead handles POST /notifications/read-all
func (h *Notification) MarkAllAsRead(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	count, err := h.notificationService.MarkAllAsRead(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &common.CountResponse{Count: count})
}

// DeleteNotification handles DELETE /notifications/:id
func (h *Notification) DeleteNotification(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.notificationService.DeleteNotification(c.Request().Context(), id, caller); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// DeleteAllNotifications handles DELETE /notifications
func (h *Notification) DeleteAllNotifications(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	count, err := h.notificationService.DeleteAllNotifications(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &common.CountResponse{Count: count})
}
