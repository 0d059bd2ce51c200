package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
	mockService "lostfound/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveAuthenticated(t *testing.T, tokenSvc service.TokenService, header string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/nearby", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(handler)(e.NewContext(req, rec)))

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthenticate_SetsActor(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"user", "admin", "bogus"},
		Type:   service.TokenTypeAccess,
	}, nil)

	var actor entity.Actor
	rec := serveAuthenticated(t, tokenSvc, "Bearer good", func(c echo.Context) error {
		var ok bool
		actor, ok = GetActor(c)
		require.True(t, ok)

		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, actor.UserID)
	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleAdmin}, actor.Roles)
}

func TestAuthenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		claims *service.Claims
		err    error
		code   string
	}{
		{name: "missing header", code: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic abc", code: "INVALID_TOKEN_FORMAT"},
		{name: "invalid token", header: "Bearer bad", err: errors.New("invalid token"), code: "TOKEN_INVALID"},
		{
			name:   "refresh token",
			header: "Bearer refresh",
			claims: &service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh},
			code:   "TOKEN_INVALID",
		},
		{
			name:   "missing subject",
			header: "Bearer anon",
			claims: &service.Claims{Type: service.TokenTypeAccess},
			code:   "TOKEN_INVALID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.claims != nil || tt.err != nil {
				tokenSvc.EXPECT().ValidateToken(tt.header[len("Bearer "):]).Return(tt.claims, tt.err)
			}

			rec := serveAuthenticated(t, tokenSvc, tt.header, func(c echo.Context) error {
				t.Fatal("handler must not run")

				return nil
			})

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestHandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		details any
	}{
		{
			name:    "app error keeps details",
			err:     errors.Wrap(domainerrors.ErrInvalidTransition.WithDetails("cannot approve a published listing"), "transition"),
			status:  http.StatusConflict,
			code:    "INVALID_TRANSITION",
			details: "cannot approve a published listing",
		},
		{
			name:   "forbidden hides details",
			err:    domainerrors.ErrForbidden.WithDetails("only moderators can approve listings"),
			status: http.StatusForbidden,
			code:   "FORBIDDEN",
		},
		{name: "echo error", err: echo.ErrNotFound, status: http.StatusNotFound, code: "HTTP_ERROR"},
		{name: "unknown error", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.details, body.Error.Details)
		})
	}
}
