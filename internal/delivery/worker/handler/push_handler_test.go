package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/service"
	mockUC "notifier/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockFanoutUsecase) {
	fanoutUC := mockUC.NewMockFanoutUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         logger,
		fanoutUC:       fanoutUC,
	}

	return handler, fanoutUC
}

func newPushRequest(t *testing.T, event *service.SendRequestEvent) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(payload),
			"messageId": "msg-1",
		},
		"subscription": "projects/test/subscriptions/send-requests",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	handler, fanoutUC := createTestPushHandler(t)

	fanoutUC.EXPECT().
		Deliver(mock.Anything, "user-1", entity.Notification{Title: "t", Body: "b", Category: "orders"}).
		Return(&entity.FanoutResult{SuccessCount: 2, FailureCount: 0}, nil)

	c, rec := newPushRequest(t, &service.SendRequestEvent{
		RequestID: "req-1",
		UserID:    "user-1",
		Title:     "t",
		Body:      "b",
		Category:  "orders",
	})

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_NoTokensAcks(t *testing.T) {
	handler, fanoutUC := createTestPushHandler(t)

	fanoutUC.EXPECT().
		Deliver(mock.Anything, "user-1", mock.Anything).
		Return(nil, domainerrors.ErrNoTokensFound)

	c, rec := newPushRequest(t, &service.SendRequestEvent{UserID: "user-1", Title: "t", Body: "b"})

	err := handler.HandlePush(c)

	require.NoError(t, err)
	// A user without tokens is final; retrying would never succeed.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StoreErrorRetries(t *testing.T) {
	handler, fanoutUC := createTestPushHandler(t)

	fanoutUC.EXPECT().
		Deliver(mock.Anything, "user-1", mock.Anything).
		Return(nil, errors.New("store unavailable"))

	c, rec := newPushRequest(t, &service.SendRequestEvent{UserID: "user-1", Title: "t", Body: "b"})

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MissingFieldsDropped(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	c, rec := newPushRequest(t, &service.SendRequestEvent{UserID: "user-1"})

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push",
		strings.NewReader(`{"message":{"data":"%%%not-base64%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.HandlePush(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEnvelope(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.HandlePush(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_UnauthorizedWhenVerifying(t *testing.T) {
	fanoutUC := mockUC.NewMockFanoutUsecase(t)
	handler := &PushHandler{
		verifyPushAuth: true,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		fanoutUC:       fanoutUC,
	}

	c, rec := newPushRequest(t, &service.SendRequestEvent{UserID: "user-1", Title: "t", Body: "b"})

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
