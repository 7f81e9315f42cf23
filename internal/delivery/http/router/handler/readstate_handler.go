package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"notifier/internal/delivery/http/response"
	"notifier/internal/domain/entity"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReadStateHandlerParams holds dependencies for ReadStateHandler, injected by Fx.
type ReadStateHandlerParams struct {
	fx.In

	ReadStateUC usecase.ReadStateUsecase
	Logger      *slog.Logger
}

// ReadStateHandler holds dependencies for notification read-state handlers
type ReadStateHandler struct {
	readStateUC usecase.ReadStateUsecase
	logger      *slog.Logger
}

// NewReadStateHandler is the constructor for ReadStateHandler
func NewReadStateHandler(params ReadStateHandlerParams) *ReadStateHandler {
	return &ReadStateHandler{
		readStateUC: params.ReadStateUC,
		logger:      params.Logger,
	}
}

// ListNotifications handles retrieving a user's notifications, newest first.
// Pass ?unread=true to restrict the list to unread records.
func (h *ReadStateHandler) ListNotifications(c echo.Context) error {
	userID := c.Param("userId")
	unreadOnly := c.QueryParam("unread") == "true"

	records, err := h.readStateUC.ListNotifications(c.Request().Context(), userID, unreadOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Notifications retrieved successfully")
}

// UnreadCount handles retrieving the point-in-time unread count.
func (h *ReadStateHandler) UnreadCount(c echo.Context) error {
	userID := c.Param("userId")

	count, err := h.readStateUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count}, "Unread count retrieved successfully")
}

// MarkAsRead flips one notification to read. Re-marking is a no-op.
func (h *ReadStateHandler) MarkAsRead(c echo.Context) error {
	userID := c.Param("userId")
	notificationID := c.Param("notificationId")

	if err := h.readStateUC.MarkAsRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"}, "Notification marked as read")
}

// sseEvent is one server-sent event frame.
type sseEvent struct {
	name string
	data any
}

// Stream exposes the live unread count and recent list over server-sent
// events. The subscriptions are released when the client disconnects.
func (h *ReadStateHandler) Stream(c echo.Context) error {
	userID := c.Param("userId")
	ctx := c.Request().Context()

	events := make(chan sseEvent, 8)

	unsubCount, err := h.readStateUC.WatchUnreadCount(ctx, userID, func(count int) {
		select {
		case events <- sseEvent{name: "unread-count", data: map[string]int{"count": count}}:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer unsubCount()

	unsubRecent, err := h.readStateUC.WatchRecent(ctx, userID, func(records []*entity.NotificationRecord) {
		select {
		case events <- sseEvent{name: "recent", data: records}:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer unsubRecent()

	// Commit the stream only once both subscriptions are established, so a
	// failed subscribe can still answer with an error status.
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-events:
			payload, err := json.Marshal(event.data)
			if err != nil {
				h.logger.Error("Failed to encode SSE payload",
					slog.String("user_id", userID),
					slog.Any("error", err),
				)

				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.name, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
