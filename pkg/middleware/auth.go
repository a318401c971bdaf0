// Package middleware provides the authentication and role gates mounted in
// front of the API routes. Identity comes from a bearer token issued by the
// external identity provider; this layer only verifies the signature and
// turns the claims into an explicit domain.Caller.
package middleware

import (
	"errors"

	"github.com/corebanq/dbank/pkg/config"
	"github.com/corebanq/dbank/pkg/domain"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoCaller is returned when a handler runs without an authenticated
// caller in the request context.
var ErrNoCaller = errors.New("missing caller context")

// JwtProtected verifies the bearer token and stores it under c.Locals("user").
func JwtProtected(cfg config.JwtConfig) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Set(fiber.HeaderContentType, "application/problem+json")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"type":   "about:blank",
				"title":  "Unauthorized",
				"status": fiber.StatusUnauthorized,
				"detail": err.Error(),
			})
		},
	})
}

// CallerFromCtx builds the domain.Caller from the verified token claims:
// "sub" is the opaque identity token, "role" one of the closed role labels.
func CallerFromCtx(c *fiber.Ctx) (domain.Caller, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return domain.Caller{}, ErrNoCaller
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Caller{}, ErrNoCaller
	}
	subject, _ := claims["sub"].(string)
	label, _ := claims["role"].(string)
	role, err := domain.ParseRole(label)
	if err != nil {
		return domain.Caller{}, err
	}
	if subject == "" {
		return domain.Caller{}, ErrNoCaller
	}
	return domain.Caller{Subject: subject, Role: role}, nil
}

// RequireRoles rejects callers whose role is not in the allow-list. It runs
// after JwtProtected.
func RequireRoles(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := CallerFromCtx(c)
		if err != nil {
			c.Set(fiber.HeaderContentType, "application/problem+json")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"type":   "about:blank",
				"title":  "Unauthorized",
				"status": fiber.StatusUnauthorized,
				"detail": err.Error(),
			})
		}
		for _, role := range roles {
			if caller.Role == role {
				return c.Next()
			}
		}
		c.Set(fiber.HeaderContentType, "application/problem+json")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"type":   "about:blank",
			"title":  "Forbidden",
			"status": fiber.StatusForbidden,
			"detail": "role " + string(caller.Role) + " may not call this endpoint",
		})
	}
}
