package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"plantcare/internal/domain/service"
	servicemocks "plantcare/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveAuthenticated(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plants", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen uuid.UUID
	handler := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc}).Authenticate(func(c echo.Context) error {
		seen, _ = GetUserID(c)

		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))

	return rec, seen
}

func TestAuthenticate_AcceptsAccessToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := servicemocks.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good-token").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)

	rec, seen := serveAuthenticated(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, seen)
}

func TestAuthenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(m *servicemocks.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer   "},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(m *servicemocks.MockTokenService) {
				m.EXPECT().ValidateToken("broken").Return(nil, errors.New("signature is invalid"))
			},
		},
		{
			name:   "refresh token",
			header: "Bearer refresh",
			setup: func(m *servicemocks.MockTokenService) {
				m.EXPECT().ValidateToken("refresh").
					Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := servicemocks.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec, seen := serveAuthenticated(t, tokenSvc, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, uuid.Nil, seen)
		})
	}
}
