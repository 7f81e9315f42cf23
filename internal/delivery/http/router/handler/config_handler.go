package handler

import (
	"log/slog"
	"net/http"

	"notifier/config"
	"notifier/internal/delivery/http/response"
	domainerrors "notifier/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// ConfigHandler serves the Firebase web configuration to bootstrapping clients
type ConfigHandler struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewConfigHandler is the constructor for ConfigHandler
func NewConfigHandler(cfg *config.Config, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// firebaseClientConfig mirrors the init payload the web SDK expects.
type firebaseClientConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
}

// GetFirebaseConfig handles GET /getFirebaseConfig.
func (h *ConfigHandler) GetFirebaseConfig(c echo.Context) error {
	client := h.cfg.Client
	if client == nil || client.APIKey == "" {
		h.logger.Error(domainerrors.ErrClientConfigMissing.Message())

		// Legacy clients expect a flat error body, not the unified envelope.
		return c.JSON(domainerrors.ErrClientConfigMissing.HTTPCode(), map[string]string{
			"error": domainerrors.ErrClientConfigMissing.Message(),
		})
	}

	return c.JSON(http.StatusOK, firebaseClientConfig{
		APIKey:            client.APIKey,
		AuthDomain:        client.AuthDomain,
		ProjectID:         client.ProjectID,
		StorageBucket:     client.StorageBucket,
		MessagingSenderID: client.MessagingSenderID,
		AppID:             client.AppID,
	})
}
