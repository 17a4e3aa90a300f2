package middleware

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/domain/entity"
	"paksupply/pkg/errors"
	"paksupply/pkg/logger"
	"paksupply/pkg/response"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := SessionFrom(c)
		if s == nil {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		if s.Role != entity.RoleAdmin {
			logger.Warn("admin route denied: email=%s, role=%s, path=%s", s.Email, s.Role, c.Path())
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		return next(c)
	}
}
