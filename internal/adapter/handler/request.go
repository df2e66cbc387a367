package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/thien06012001/backend/internal/adapter/presenter"
	requestUsecase "github.com/thien06012001/backend/internal/usecase/request"
)

// Request handles join request HTTP requests
type Request struct {
	requestService requestUsecase.Service
	logger         *zap.Logger
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService requestUsecase.Service, logger *zap.Logger) *Request {
	return &Request{
		requestService: requestService,
		logger:         logger,
	}
}

// GetEventRequests handles GET /events/:id/requests
func (h *Request) GetEventRequests(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	requests, err := h.requestService.GetEventRequests(c.Request().Context(), eventID, caller)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToRequestListResponse(requests))
}

// CreateRequest handles POST /events/:id/requests
func (h *Request) CreateRequest(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	req, err := h.requestService.CreateRequest(c.Request().Context(), eventID, caller)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToRequestResponse(req))
}

// CancelRequest handles DELETE /events/:id/requests/me
func (h *Request) CancelRequest(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.requestService.CancelRequest(c.Request().Context(), eventID, caller); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// ApproveRequest handles POST /requests/:id/approve
func (h *Request) ApproveRequest(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.requestService.ApproveRequest(c.Request().Context(), id, caller); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// RejectRequest handles POST /requests/:id/reject
func (h *Request) RejectRequest(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.requestService.RejectRequest(c.Request().Context(), id, caller); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
