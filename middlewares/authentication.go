// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"scratchcard-server/commons"
)

const (
	adminSubject = "admin"
	issuer       = "scratchcard-server"
)

type AuthConfig struct {
	Secret   []byte
	TokenTTL time.Duration
}

func AuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:   []byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")),
		TokenTTL: commons.GetEnvDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
	}
}

// IssueAdminToken signs a bearer token for the dashboard.
func IssueAdminToken(cfg AuthConfig, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(cfg.TokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		Issuer:    issuer,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func VerifyAdminMiddleware(cfg AuthConfig) func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				logger.Error("Authorization header missing or invalid.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Bearer token is required",
				}
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return cfg.Secret, nil
			}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
			if err != nil || !token.Valid || claims.Subject != adminSubject {
				logger.Error("Admin token rejected: ", err)
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired authentication token",
				}
			}

			c.Set("admin_token_id", claims.ID)
			return next(c)
		}
	}
}
