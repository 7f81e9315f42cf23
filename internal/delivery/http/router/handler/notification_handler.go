package handler

import (
	"log/slog"
	"net/http"
	"strings"

	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/entity"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	FanoutUC usecase.FanoutUsecase
	Logger   *slog.Logger
}

// NotificationHandler holds dependencies for the send-notification gateway
type NotificationHandler struct {
	fanoutUC usecase.FanoutUsecase
	logger   *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		fanoutUC: params.FanoutUC,
		logger:   params.Logger,
	}
}

// SendNotificationRequest represents the request body for sending a notification
type SendNotificationRequest struct {
	UserID   string `json:"userId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category,omitempty"`
}

// sendNotificationResponse is the wire shape of a completed fan-out.
type sendNotificationResponse struct {
	Success      bool                 `json:"success"`
	Results      []entity.SendOutcome `json:"results"`
	SuccessCount int                  `json:"successCount"`
	FailureCount int                  `json:"failureCount"`
}

// errorResponse is the wire shape of a failed gateway call.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SendNotification handles POST /sendNotification. It validates the request,
// runs the fan-out synchronously and returns the per-token results.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	req, bindErr := h.bindSendRequest(c)
	if req == nil {
		// The rejection response has already been written.
		return bindErr
	}

	result, err := h.fanoutUC.Deliver(c.Request().Context(), req.UserID, entity.Notification{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		return h.handleFanoutError(c, err)
	}

	return c.JSON(http.StatusOK, sendNotificationResponse{
		Success:      true,
		Results:      result.Results,
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
	})
}

// SendNotificationAsync handles POST /sendNotificationAsync. The request is
// queued for the push worker instead of fanning out in-band.
func (h *NotificationHandler) SendNotificationAsync(c echo.Context) error {
	req, bindErr := h.bindSendRequest(c)
	if req == nil {
		return bindErr
	}

	if err := h.fanoutUC.Enqueue(c.Request().Context(), req.UserID, entity.Notification{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	}); err != nil {
		h.logger.Error("Failed to enqueue notification",
			slog.String("user_id", req.UserID),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusAccepted, map[string]any{"success": true, "queued": true})
}

// bindSendRequest binds the body and enforces the required fields, answering
// with a 400 that names every missing parameter. A nil request means the
// rejection has already been written; the returned error is the write result.
func (h *NotificationHandler) bindSendRequest(c echo.Context) (*SendNotificationRequest, error) {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	var missing []string
	if req.UserID == "" {
		missing = append(missing, "userId")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Body == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return nil, c.JSON(http.StatusBadRequest, errorResponse{
			Error: "Missing parameters: " + strings.Join(missing, ", "),
		})
	}

	return &req, nil
}

// handleFanoutError maps fan-out failures onto the gateway wire contract.
func (h *NotificationHandler) handleFanoutError(c echo.Context, err error) error {
	if errors.Is(err, domainerrors.ErrNoTokensFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "No tokens found"})
	}

	h.logger.Error("Fan-out failed", slog.Any("error", err))

	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
