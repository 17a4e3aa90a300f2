package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"paksupply/internal/infrastructure/ratelimit"
	"paksupply/pkg/errors"
	"paksupply/pkg/logger"
	"paksupply/pkg/response"
)

// RateLimit throttles an action per client IP, or per session when one is attached.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if s := SessionFrom(c); s != nil {
				key = s.Email
			}

			ok, wait := limiter.Allow(key, action)
			if !ok {
				logger.Warn("rate limit hit: key=%s, action=%s, retry_in=%v", key, action, wait)
				retry := int(math.Ceil(wait.Seconds()))
				if retry < 1 {
					retry = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded"))
			}

			return next(c)
		}
	}
}
