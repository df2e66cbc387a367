package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/thien06012001/backend/internal/adapter/dto/auth"
	"github.com/thien06012001/backend/internal/adapter/presenter"
	authUsecase "github.com/thien06012001/backend/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService authUsecase.Service
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService authUsecase.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register
// @Summary      Register a new account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.RegisterRequest  true  "Registration request"
// @Success      201      {object}  auth.UserResponse
// @Failure      409      {object}  map[string]interface{}  "Email already registered"
// @Router       /auth/register [post]
func (h *Auth) Register(c echo.Context) error {
	var req authdto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.authService.Register(c.Request().Context(), authUsecase.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToUserResponse(user))
}

// Login handles POST /auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	pair, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &authdto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		TokenType:    "Bearer",
		User:         presenter.ToUserResponse(user),
	})
}

// Refresh handles POST /auth/refresh
func (h *Auth) Refresh(c echo.Context) error {
	var req authdto.RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &authdto.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		TokenType:    "Bearer",
	})
}

// Me handles GET /auth/me
func (h *Auth) Me(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponse(user))
}
