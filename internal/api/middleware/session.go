package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/carepath/learning-platform/internal/api/metrics"
	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
)

// Session resolves the caller's identity from the Authorization header and
// injects it into the request context. A missing header is a normal outcome:
// the request proceeds anonymously and actions answer with a 401 envelope. A
// present but invalid token is rejected here with 401, since it signals a
// broken client rather than an anonymous one.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			email, _ := claims["email"].(string)
			if sub == "" {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			identity := &domain.Identity{ID: sub, Email: email}
			ctx := auth.WithIdentity(c.Request().Context(), identity)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
