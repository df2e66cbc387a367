package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	settingdto "github.com/thien06012001/backend/internal/adapter/dto/setting"
	settingUsecase "github.com/thien06012001/backend/internal/usecase/setting"
)

// Setting handles tenant settings HTTP requests
type Setting struct {
	settingService settingUsecase.Service
	logger         *zap.Logger
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(settingService settingUsecase.Service, logger *zap.Logger) *Setting {
	return &Setting{
		settingService: settingService,
		logger:         logger,
	}
}

// GetSettings handles GET /settings
func (h *Setting) GetSettings(c echo.Context) error {
	settings, err := h.settingService.GetSettings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings (admin only)
func (h *Setting) UpdateSettings(c echo.Context) error {
	var req settingdto.UpdateSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	settings, err := h.settingService.UpdateSettings(c.Request().Context(), settingUsecase.UpdateSettingsInput{
		MaxActiveEvents:            req.MaxActiveEvents,
		MaxEventCapacity:           req.MaxEventCapacity,
		DefaultParticipantReminder: req.DefaultParticipantReminder,
		DefaultInvitationReminder:  req.DefaultInvitationReminder,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, settings)
}
