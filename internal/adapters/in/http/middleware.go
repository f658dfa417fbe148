package http

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/pkg/auth"
	"fastbite/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

type TokenVerifier interface {
	Verify(raw string) (auth.Caller, error)
}

// Authenticate requires a valid bearer token and stores the caller in the
// echo context.
func Authenticate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				return unauthorized(c)
			}

			caller, err := verifier.Verify(strings.TrimSpace(raw))
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					return unauthorized(c)
				}
				return err
			}

			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

// RequireRoles lets the request through only for the listed roles.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := callerFrom(c)
			if !ok {
				return unauthorized(c)
			}
			if !slices.Contains(roles, caller.Role) {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "forbidden: role " + caller.Role.String() + " may not access this resource",
				})
			}
			return next(c)
		}
	}
}

func callerFrom(c echo.Context) (auth.Caller, bool) {
	caller, ok := c.Get(callerContextKey).(auth.Caller)
	return caller, ok
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Code: http.StatusUnauthorized, Message: "unauthorized"})
}

// RequestLogger writes one slog record per finished request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.InfoContext(c.Request().Context(), "http request",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", c.Response().Status),
				slog.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}

// Instrument counts requests per route template. Streams only count, since
// their duration is the lifetime of the connection.
func Instrument(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			m.Requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).Inc()
			if !strings.HasSuffix(route, "/stream") {
				m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
			}
			return nil
		}
	}
}
