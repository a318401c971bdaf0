package common

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BindBody parses the JSON request body into T. A malformed body is a
// client error, not a server one.
func BindBody[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return &input, nil
}

// BindQuery parses the query string into T.
func BindQuery[T any](c *fiber.Ctx) (*T, error) {
	var query T
	if err := c.QueryParser(&query); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	return &query, nil
}

// PathUUID reads a UUID path parameter. A malformed identifier is rejected
// before the service layer sees it.
func PathUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+" parameter")
	}
	return id, nil
}
