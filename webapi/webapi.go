// Package webapi provides the HTTP surface of the banking backend.
// It is organized into sub-packages per resource:
// - account: bank account endpoints
// - card: payment card endpoints, PIN and identity checks
// - operation: account operation endpoints and confirmation
package webapi

import (
	"log/slog"
	"time"

	"github.com/corebanq/dbank/pkg/config"
	"github.com/corebanq/dbank/pkg/repository"
	accountsvc "github.com/corebanq/dbank/pkg/service/account"
	cardsvc "github.com/corebanq/dbank/pkg/service/card"
	operationsvc "github.com/corebanq/dbank/pkg/service/operation"
	accountweb "github.com/corebanq/dbank/webapi/account"
	cardweb "github.com/corebanq/dbank/webapi/card"
	"github.com/corebanq/dbank/webapi/common"
	operationweb "github.com/corebanq/dbank/webapi/operation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "github.com/corebanq/dbank/docs"
)

// SetupApp builds the Fiber application with all routes and middleware
// registered.
func SetupApp(uow repository.UnitOfWork, cfg *config.App, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "dbank",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return common.ProblemDetailsJSON(c, e.Code, e.Message, nil)
			}
			return common.ProblemDetailsJSON(c, fiber.StatusInternalServerError,
				"Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "rate limit exceeded")
		},
	}))

	app.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	accountweb.Routes(app, accountsvc.New(uow, log), cfg)
	cardweb.Routes(app, cardsvc.New(uow, log), cfg)
	operationweb.Routes(app, operationsvc.New(uow, log), cfg)

	return app
}
