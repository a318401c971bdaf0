// Package common holds the response envelope, the error-to-status mapping
// and the request binding helpers shared by the webapi handlers.
package common

import (
	"errors"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/validation"
	"github.com/gofiber/fiber/v2"
)

// Response is the standard success envelope.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response.
func ProblemDetailsJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Instance: c.OriginalURL(),
	}
	switch d := detail.(type) {
	case nil:
	case string:
		pd.Detail = d
	default:
		pd.Errors = d
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps domain errors onto HTTP status codes. State
// conflicts (blocked or expired card, confirmed operation) are 403 like
// ownership denials.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrOperationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAccessDenied),
		errors.Is(err, domain.ErrCardBlocked),
		errors.Is(err, domain.ErrCardExpired),
		errors.Is(err, domain.ErrOperationConfirmed):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError writes the problem response for a service error. Validation
// failures carry the full set of violated fields.
func HandleError(c *fiber.Ctx, err error) error {
	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Validation failed", verrs.Violations)
	}
	status := ErrorToStatusCode(err)
	title := "Internal Server Error"
	detail := any(nil)
	switch status {
	case fiber.StatusNotFound:
		title = "Not Found"
		detail = err.Error()
	case fiber.StatusForbidden:
		title = "Forbidden"
		detail = err.Error()
	}
	return ProblemDetailsJSON(c, status, title, detail)
}
