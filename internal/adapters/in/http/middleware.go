package http

import (
	"fmt"
	"net/http"
	"strings"

	"traveldesk/internal/core/domain/model/actor"
	"traveldesk/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key under which the authenticated
// actor is stored by the auth middleware.
const actorContextKey = "traveldesk.actor"

// Claims are the verified identity claims carried by a bearer token.
// The external identity provider issues the tokens; this service only
// verifies them.
type Claims struct {
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// BearerAuth returns an echo middleware that verifies the Authorization
// bearer token and stores the resulting actor in the request context.
// Requests without a valid token are rejected with 401 before reaching any
// handler.
func BearerAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return unauthorized(c, "missing bearer token")
			}

			a, err := actorFromToken(token, secret)
			if err != nil {
				return unauthorized(c, "invalid bearer token")
			}

			c.Set(actorContextKey, a)
			return next(c)
		}
	}
}

// actorFromToken verifies the token signature and builds the actor from its
// claims.
func actorFromToken(token string, secret []byte) (actor.Actor, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return actor.Actor{}, err
	}
	if !parsed.Valid {
		return actor.Actor{}, jwt.ErrTokenUnverifiable
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, claims.Name, claims.IsAdmin)
}

// actorFromContext retrieves the actor stored by BearerAuth.
func actorFromContext(c echo.Context) (actor.Actor, bool) {
	a, ok := c.Get(actorContextKey).(actor.Actor)
	return a, ok
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
