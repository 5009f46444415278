// Package auth gates routes behind permission strings carried in
// bearer tokens.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/pkg/env"
)

const payloadKey = "payload"

// Permission wraps a handler so it only runs when the request carries
// a valid bearer token granting the required permission. Failure
// statuses and messages are part of the API contract and surface
// verbatim in the response body.
func Permission(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			claims, err := verify(token)
			if err != nil {
				return err
			}

			if !granted(claims, required) {
				return echo.NewHTTPError(http.StatusForbidden, "Permission not found.")
			}

			c.Set(payloadKey, claims)
			return next(c)
		}
	}
}

// Payload returns the verified token claims stored by Permission, or
// nil on unauthenticated routes.
func Payload(c echo.Context) jwt.MapClaims {
	claims, _ := c.Get(payloadKey).(jwt.MapClaims)
	return claims
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is expected.")
	}

	parts := strings.Fields(header)
	switch {
	case len(parts) == 0:
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is expected.")
	case !strings.EqualFold(parts[0], "bearer"):
		return "", echo.NewHTTPError(http.StatusUnauthorized, `Authorization header must start with "Bearer".`)
	case len(parts) == 1:
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Token not found.")
	case len(parts) > 2:
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be bearer token.")
	}

	return parts[1], nil
}

func verify(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(env.Variables().AuthSecret), nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Token is expired.")
	case err != nil || !token.Valid:
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unable to parse authentication token.")
	}

	return claims, nil
}

func granted(claims jwt.MapClaims, required string) bool {
	permissions, ok := claims["permissions"].([]interface{})
	if !ok {
		return false
	}

	for _, permission := range permissions {
		if s, ok := permission.(string); ok && s == required {
			return true
		}
	}

	return false
}
