package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "notifier/internal/delivery/http/validator"
	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/service"
	mockRepo "notifier/internal/mocks/repository"
	mockSvc "notifier/internal/mocks/service"
	"notifier/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTokenHandler(t *testing.T) (*TokenHandler, *mockRepo.MockTokenRepository, *mockSvc.MockPushPlatform) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	platform := mockSvc.NewMockPushPlatform(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := &TokenHandler{
		tokenUC: impl.NewTokenService(logger, tokenRepo, platform),
		logger:  logger,
	}

	return handler, tokenRepo, platform
}

func newTokenRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestTokenHandler_RegisterToken_Success(t *testing.T) {
	handler, tokenRepo, _ := createTestTokenHandler(t)

	tokenRepo.EXPECT().
		SaveToken(mock.Anything, "user-1", mock.MatchedBy(func(token *entity.DeviceToken) bool {
			return token.Token == "token-a" && !token.CreatedAt.IsZero()
		})).
		Return(nil)

	c, rec := newTokenRequest(http.MethodPost, "/users/user-1/tokens", `{"token":"token-a"}`)
	c.SetParamNames("userId")
	c.SetParamValues("user-1")

	err := handler.RegisterToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestTokenHandler_RegisterToken_MissingToken(t *testing.T) {
	handler, _, _ := createTestTokenHandler(t)

	c, rec := newTokenRequest(http.MethodPost, "/users/user-1/tokens", `{}`)
	c.SetParamNames("userId")
	c.SetParamValues("user-1")

	err := handler.RegisterToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_PARAMETERS")
	assert.Contains(t, rec.Body.String(), `"details":"token"`)
}

func TestTokenHandler_RegisterToken_StoreError(t *testing.T) {
	handler, tokenRepo, _ := createTestTokenHandler(t)

	tokenRepo.EXPECT().
		SaveToken(mock.Anything, "user-1", mock.Anything).
		Return(domainerrors.NewStoreExecuteError(assert.AnError, "failed to save token"))

	c, rec := newTokenRequest(http.MethodPost, "/users/user-1/tokens", `{"token":"token-a"}`)
	c.SetParamNames("userId")
	c.SetParamValues("user-1")

	err := handler.RegisterToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORE_EXECUTE_FAILED")
}

func TestTokenHandler_RegisterCurrentDevice_PermissionDenied(t *testing.T) {
	handler, _, platform := createTestTokenHandler(t)

	platform.EXPECT().
		RequestPermission(mock.Anything).
		Return(service.PermissionDenied, nil)

	c, rec := newTokenRequest(http.MethodPost, "/users/user-1/devices", "")
	c.SetParamNames("userId")
	c.SetParamValues("user-1")

	err := handler.RegisterCurrentDevice(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "PERMISSION_DENIED")
}

func TestTokenHandler_DeleteToken_Success(t *testing.T) {
	handler, tokenRepo, _ := createTestTokenHandler(t)

	tokenRepo.EXPECT().DeleteToken(mock.Anything, "user-1", "token-a").Return(nil)

	c, rec := newTokenRequest(http.MethodDelete, "/users/user-1/tokens/token-a", "")
	c.SetParamNames("userId", "token")
	c.SetParamValues("user-1", "token-a")

	err := handler.DeleteToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
