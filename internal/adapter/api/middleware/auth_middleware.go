package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"paksupply/internal/domain/entity"
	"paksupply/pkg/errors"
	"paksupply/pkg/response"
)

const sessionKey = "session"

type SessionResolver interface {
	Get(token string) (*entity.Session, error)
}

type AuthMiddleware struct {
	sessions SessionResolver
}

func NewAuthMiddleware(sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

func bearerToken(c echo.Context) (string, bool) {
	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Authenticate requires a live session and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		s, err := m.sessions.Get(token)
		if err != nil {
			return response.Error(c, err)
		}

		c.Set(sessionKey, s)
		return next(c)
	}
}

// Optional attaches the session when a valid token is sent and carries on otherwise.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if s, err := m.sessions.Get(token); err == nil {
				c.Set(sessionKey, s)
			}
		}
		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFrom(c)
			if s == nil {
				return response.Error(c, errors.Unauthorized("Authentication required", nil))
			}
			if s.Role != role {
				return response.Error(c, errors.Forbidden("This action requires a "+strings.ToLower(string(role))+" account", nil))
			}
			return next(c)
		}
	}
}

func SessionFrom(c echo.Context) *entity.Session {
	s, _ := c.Get(sessionKey).(*entity.Session)
	return s
}

// Token returns the bearer token of the current request, if any.
func Token(c echo.Context) string {
	token, _ := bearerToken(c)
	return token
}
