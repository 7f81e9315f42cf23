package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	mockUC "notifier/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationHandler(t *testing.T) (*NotificationHandler, *mockUC.MockFanoutUsecase) {
	fanoutUC := mockUC.NewMockFanoutUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := &NotificationHandler{
		fanoutUC: fanoutUC,
		logger:   logger,
	}

	return handler, fanoutUC
}

func newSendRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/sendNotification", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestNotificationHandler_SendNotification_Success(t *testing.T) {
	handler, fanoutUC := createTestNotificationHandler(t)

	fanoutUC.EXPECT().
		Deliver(mock.Anything, "user-1", entity.Notification{Title: "Hello", Body: "World"}).
		Return(&entity.FanoutResult{
			Results: []entity.SendOutcome{
				{Token: "token-a", Success: true, Response: "msg-1"},
				{Token: "token-b", Success: false, Error: "fcm unavailable"},
			},
			SuccessCount: 1,
			FailureCount: 1,
		}, nil)

	c, rec := newSendRequest(`{"userId":"user-1","title":"Hello","body":"World"}`)

	err := handler.SendNotification(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["successCount"])
	assert.Equal(t, float64(1), resp["failureCount"])
	results, ok := resp["results"].([]any)
	require.True(t, ok)
	assert.Len(t, results, 2)
}

func TestNotificationHandler_SendNotification_MissingParameters(t *testing.T) {
	handler, _ := createTestNotificationHandler(t)

	c, rec := newSendRequest(`{"title":"Hello"}`)

	err := handler.SendNotification(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "Missing parameters: userId, body")
}

func TestNotificationHandler_SendNotification_InvalidBody(t *testing.T) {
	handler, _ := createTestNotificationHandler(t)

	c, rec := newSendRequest(`{"userId":`)

	err := handler.SendNotification(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestNotificationHandler_SendNotification_NoTokens(t *testing.T) {
	handler, fanoutUC := createTestNotificationHandler(t)

	fanoutUC.EXPECT().
		Deliver(mock.Anything, "user-1", mock.Anything).
		Return(nil, domainerrors.ErrNoTokensFound)

	c, rec := newSendRequest(`{"userId":"user-1","title":"Hello","body":"World"}`)

	err := handler.SendNotification(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "No tokens found", resp["error"])
}

func TestNotificationHandler_SendNotification_InternalError(t *testing.T) {
	handler, fanoutUC := createTestNotificationHandler(t)

	fanoutUC.EXPECT().
		Deliver(mock.Anything, "user-1", mock.Anything).
		Return(nil, errors.New("store unavailable"))

	c, rec := newSendRequest(`{"userId":"user-1","title":"Hello","body":"World"}`)

	err := handler.SendNotification(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestNotificationHandler_SendNotification_CategoryPassedThrough(t *testing.T) {
	handler, fanoutUC := createTestNotificationHandler(t)

	fanoutUC.EXPECT().
		Deliver(mock.Anything, "user-1", entity.Notification{Title: "t", Body: "b", Category: "orders"}).
		Return(&entity.FanoutResult{Results: []entity.SendOutcome{}, SuccessCount: 0, FailureCount: 0}, nil)

	c, rec := newSendRequest(`{"userId":"user-1","title":"t","body":"b","category":"orders"}`)

	err := handler.SendNotification(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_SendNotificationAsync_Queued(t *testing.T) {
	handler, fanoutUC := createTestNotificationHandler(t)

	fanoutUC.EXPECT().
		Enqueue(mock.Anything, "user-1", entity.Notification{Title: "t", Body: "b"}).
		Return(nil)

	c, rec := newSendRequest(`{"userId":"user-1","title":"t","body":"b"}`)

	err := handler.SendNotificationAsync(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"queued":true`)
}

func TestNotificationHandler_SendNotificationAsync_MissingParameters(t *testing.T) {
	handler, _ := createTestNotificationHandler(t)

	c, rec := newSendRequest(`{"body":"b"}`)

	err := handler.SendNotificationAsync(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing parameters: userId, title")
}

func TestNotificationHandler_SendNotificationAsync_PublishError(t *testing.T) {
	handler, fanoutUC := createTestNotificationHandler(t)

	fanoutUC.EXPECT().
		Enqueue(mock.Anything, "user-1", mock.Anything).
		Return(errors.New("broker down"))

	c, rec := newSendRequest(`{"userId":"user-1","title":"t","body":"b"}`)

	err := handler.SendNotificationAsync(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
