package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/thien06012001/backend/errors"
	eventdto "github.com/thien06012001/backend/internal/adapter/dto/event"
	"github.com/thien06012001/backend/internal/adapter/presenter"
	eventUsecase "github.com/thien06012001/backend/internal/usecase/event"
)

// Event handles event HTTP requests
type Event struct {
	eventService eventUsecase.Service
	logger       *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService eventUsecase.Service, logger *zap.Logger) *Event {
	return &Event{
		eventService: eventService,
		logger:       logger,
	}
}

// CreateEvent handles POST /events
// @Summary      Create a new event
// @Description  Validates the candidate event against the tenant limits and persists it
// @Tags         Events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      event.CreateEventRequest  true  "Event creation request"
// @Success      201      {object}  event.EventResponse
// @Failure      400      {object}  map[string]interface{}  "Malformed timestamps or ordering violation"
// @Failure      422      {object}  map[string]interface{}  "Active-event or capacity limit exceeded"
// @Router       /events [post]
func (h *Event) CreateEvent(c echo.Context) error {
	var req eventdto.CreateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ownerID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	event, err := h.eventService.CreateEvent(c.Request().Context(), eventUsecase.CreateEventInput{
		Name:                req.Name,
		Description:         req.Description,
		Location:            req.Location,
		ImageURL:            req.ImageURL,
		OwnerID:             ownerID,
		IsPublic:            isPublic,
		Capacity:            req.Capacity,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		ParticipantReminder: req.ParticipantReminder,
		InvitationReminder:  req.InvitationReminder,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToEventResponse(event))
}

// GetEvent handles GET /events/:id
func (h *Event) GetEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	event, err := h.eventService.GetEvent(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEventResponse(event))
}

// ListEvents handles GET /events
func (h *Event) ListEvents(c echo.Context) error {
	events, err := h.eventService.ListPublicEvents(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEventListResponse(events))
}

// UpdateEvent handles PUT /events/:id
func (h *Event) UpdateEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.requireOwner(c, id); err != nil {
		return HandleError(h.logger, c, err)
	}

	var req eventdto.UpdateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	event, err := h.eventService.UpdateEvent(c.Request().Context(), id, eventUsecase.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		IsPublic:    req.IsPublic,
		Capacity:    req.Capacity,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEventResponse(event))
}

// UpdateReminders handles PUT /events/:id/reminders
func (h *Event) UpdateReminders(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.requireOwner(c, id); err != nil {
		return HandleError(h.logger, c, err)
	}

	var req eventdto.UpdateRemindersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	event, err := h.eventService.UpdateReminders(c.Request().Context(), id, req.ParticipantReminder, req.InvitationReminder)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEventResponse(event))
}

// DeleteEvent handles DELETE /events/:id
func (h *Event) DeleteEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.requireOwner(c, id); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.eventService.DeleteEvent(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// GetParticipants handles GET /events/:id/participants
func (h *Event) GetParticipants(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	participants, err := h.eventService.GetParticipants(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToParticipantListResponse(participants))
}

// LeaveEvent handles DELETE /events/:id/participants/me
func (h *Event) LeaveEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	userID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.eventService.LeaveEvent(c.Request().Context(), id, userID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// KickParticipant handles DELETE /events/:id/participants/:userID
func (h *Event) KickParticipant(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	targetID, err := pathUUID(c, "userID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	ownerID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.eventService.KickParticipant(c.Request().Context(), id, ownerID, targetID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// requireOwner checks that the caller owns the event
func (h *Event) requireOwner(c echo.Context, eventID uuid.UUID) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	event, err := h.eventService.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	if event.OwnerID != caller {
		return apperrors.ErrPermissionDenied("modify this event")
	}
	return nil
}

// PingReminders handles POST /events/reminders/ping
// @Summary      Run the reminder sweep
// @Description  Scans upcoming events and emits reminder notifications for
//               events whose day offset matches a configured threshold
// @Tags         Events
// @Produce      json
// @Success      200  {object}  event.SweepResponse
// @Router       /events/reminders/ping [post]
func (h *Event) PingReminders(c echo.Context) error {
	sent, err := h.eventService.RunReminderSweep(c.Request().Context(), time.Now())
	if err != nil {
		// Partial failures still emitted some notifications; report both
		h.logger.Error("reminder sweep returned errors", zap.Error(err))
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &eventdto.SweepResponse{NotificationsSent: sent})
}
