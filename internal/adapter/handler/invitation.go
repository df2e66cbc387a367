package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	eventdto "github.com/thien06012001/backend/internal/adapter/dto/event"
	"github.com/thien06012001/backend/internal/adapter/presenter"
	invitationUsecase "github.com/thien06012001/backend/internal/usecase/invitation"
)

// Invitation handles invitation HTTP requests
type Invitation struct {
	invitationService invitationUsecase.Service
	logger            *zap.Logger
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService invitationUsecase.Service, logger *zap.Logger) *Invitation {
	return &Invitation{
		invitationService: invitationService,
		logger:            logger,
	}
}

// GetMyInvitations handles GET /invitations
func (h *Invitation) GetMyInvitations(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	invitations, err := h.invitationService.GetUserInvitations(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToInvitationListResponse(invitations))
}

// GetEventInvitations handles GET /events/:id/invitations
func (h *Invitation) GetEventInvitations(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	invitations, err := h.invitationService.GetEventInvitations(c.Request().Context(), eventID, caller)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToInvitationListResponse(invitations))
}

// InviteUser handles POST /events/:id/invitations
func (h *Invitation) InviteUser(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req eventdto.InviteUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	inv, err := h.invitationService.CreateInvitation(c.Request().Context(), invitationUsecase.CreateInvitationInput{
		EventID:  eventID,
		UserID:   req.UserID,
		CallerID: caller,
		Message:  req.Message,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToInvitationResponse(inv))
}

// InviteByEmail handles POST /events/:id/invitations/email
func (h *Invitation) InviteByEmail(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req eventdto.InviteByEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	inv, err := h.invitationService.SendInvitationByEmail(c.Request().Context(), invitationUsecase.SendInvitationInput{
		EventID:  eventID,
		Email:    req.Email,
		CallerID: caller,
		Message:  req.Message,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToInvitationResponse(inv))
}

// BulkInvite handles POST /events/:id/invitations/bulk
func (h *Invitation) BulkInvite(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req eventdto.BulkInviteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	invitations, err := h.invitationService.CreateBulkInvitations(c.Request().Context(), invitationUsecase.BulkInvitationInput{
		EventID:  eventID,
		UserIDs:  req.UserIDs,
		CallerID: caller,
		Message:  req.Message,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToInvitationListResponse(invitations))
}

// AcceptInvitation handles POST /invitations/:id/accept
func (h *Invitation) AcceptInvitation(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	inv, err := h.invitationService.AcceptInvitation(c.Request().Context(), id, caller)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToInvitationResponse(inv))
}

// RejectInvitation handles POST /invitations/:id/reject
func (h *Invitation) RejectInvitation(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	inv, err := h.invitationService.RejectInvitation(c.Request().Context(), id, caller)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToInvitationResponse(inv))
}

// DeleteInvitation handles DELETE /invitations/:id
func (h *Invitation) DeleteInvitation(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.invitationService.DeleteInvitation(c.Request().Context(), id, caller); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
