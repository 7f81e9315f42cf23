package handler

import (
	"log/slog"
	"net/http"

	"notifier/internal/delivery/http/response"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// TokenHandler holds dependencies for device-token handlers
type TokenHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a token
type RegisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterToken handles explicit token registration for a user. Registering
// the same token twice overwrites in place.
func (h *TokenHandler) RegisterToken(c echo.Context) error {
	userID := c.Param("userId")

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrMissingParameters.WithDetails("token"))
	}

	token, err := h.tokenUC.RegisterToken(c.Request().Context(), userID, req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token, "Token registered successfully")
}

// ListTokens handles retrieving all registered tokens for a user
func (h *TokenHandler) ListTokens(c echo.Context) error {
	userID := c.Param("userId")

	tokens, err := h.tokenUC.ListTokens(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens, "Tokens retrieved successfully")
}

// DeleteToken handles unregistering one token. Unknown tokens succeed as a
// no-op.
func (h *TokenHandler) DeleteToken(c echo.Context) error {
	userID := c.Param("userId")
	token := c.Param("token")

	if err := h.tokenUC.DeleteToken(c.Request().Context(), userID, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token deleted successfully"}, "Token deleted successfully")
}

// RegisterCurrentDevice runs the platform registration flow (permission
// prompt, token derivation, upsert) for the current device.
func (h *TokenHandler) RegisterCurrentDevice(c echo.Context) error {
	userID := c.Param("userId")

	token, err := h.tokenUC.RegisterCurrentDevice(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"token": token}, "Device registered successfully")
}

// DeleteCurrentDevice removes the current device's token record.
func (h *TokenHandler) DeleteCurrentDevice(c echo.Context) error {
	userID := c.Param("userId")

	if err := h.tokenUC.DeleteCurrentDeviceToken(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device token deleted"}, "Device token deleted")
}
