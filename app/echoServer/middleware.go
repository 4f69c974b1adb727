// app/echoServer/middleware.go
package echoServer

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bookrental/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
			)
			return err
		}
	}
}

// Users is the slice of the user store the gateway needs: id → user.
type Users interface {
	Get(ctx context.Context, id string) (*model.User, bool)
}

// JWT verifies the bearer token signature and expiry.
func JWT(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		},
	})
}

// ResolveUser runs after JWT: it maps the sub claim to a stored user,
// rejects unknown or deactivated accounts, and puts the user id on the
// context for handlers.
func ResolveUser(users Users) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := c.Get("user").(*jwt.Token)
			if !ok || tok == nil {
				return unauthorized(c)
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c)
			}
			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				return unauthorized(c)
			}

			u, ok := users.Get(c.Request().Context(), sub)
			if !ok || !u.IsActive {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "Invalid or inactive user",
				})
			}

			c.Set("user_id", u.ID)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"message": "Access token required",
	})
}
