package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutritrack/config"
	"nutritrack/internal/delivery/http/response"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/service"
	mockSvc "nutritrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockSvc.MockTokenService)
		wantStatus int
		wantUserID uuid.UUID
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			header:     "Bearer   ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good-token",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID, Type: "access"}, nil)
			},
			wantStatus: http.StatusOK,
			wantUserID: userID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUserID uuid.UUID
			next := func(c echo.Context) error {
				gotUserID, _ = UserIDFromContext(c)

				return c.NoContent(http.StatusOK)
			}

			require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestUserIDFromContext_NilID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(ContextKeyUserID, uuid.Nil)

	_, ok := UserIDFromContext(c)
	assert.False(t, ok)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		method      string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:       "app error",
			err:        errors.Wrap(domainerrors.ErrReminderNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   "REMINDER_NOT_FOUND",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantDetails: "method not allowed",
		},
		{
			name:       "unknown error hides details",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:        "unknown error in debug shows details",
			debug:       true,
			err:         errors.New("pq: relation does not exist"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantDetails: "pq: relation does not exist",
		},
		{
			name:       "head request has no body",
			method:     http.MethodHead,
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(method, "/api/v1/reminders", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if method == http.MethodHead {
				assert.Empty(t, rec.Body.String())

				return
			}

			var resp response.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
