// Package account exposes the HTTP surface for bank accounts.
//
// Routes:
//   - GET    /accounts          : List accounts (paginated, filterable).
//   - GET    /accounts/:id      : Fetch one account.
//   - POST   /accounts          : Create an account for the caller.
//   - PUT    /accounts/:id      : Replace an account.
//   - PATCH  /accounts/:id      : Partially update an account.
//   - DELETE /accounts/:id      : Soft-delete an account.
package account

import (
	"github.com/corebanq/dbank/pkg/config"
	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
	"github.com/corebanq/dbank/pkg/mapper"
	"github.com/corebanq/dbank/pkg/middleware"
	accountsvc "github.com/corebanq/dbank/pkg/service/account"
	"github.com/corebanq/dbank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const collectionPath = "/accounts"

// Routes registers the account endpoints. Every route requires a valid JWT;
// the role gate per route follows the access matrix.
func Routes(app *fiber.App, svc *accountsvc.Service, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Jwt)
	app.Get("/accounts", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient, domain.RoleATM),
		List(svc))
	app.Get("/accounts/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient, domain.RoleATM),
		Get(svc))
	app.Post("/accounts", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Create(svc))
	app.Put("/accounts/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Replace(svc))
	app.Patch("/accounts/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Patch(svc))
	app.Delete("/accounts/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Delete(svc))
}

func withLinks(view dto.AccountView) dto.AccountView {
	view.Links = common.ResourceLinks(collectionPath, view.ID.String())
	return view
}

// List returns a handler that searches accounts with per-field partial-match
// filters and pagination.
// @Summary List accounts
// @Description Lists active accounts. Supports pagination and per-field partial-match filters. Clients only see their own accounts; some filters are Admin-only.
// @Tags accounts
// @Produce json
// @Param interval query int false "Page size (default 20)"
// @Param offset query int false "Offset into the result set"
// @Success 200 {object} common.Response "Accounts found"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Router /accounts [get]
// @Security Bearer
func List(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		query, err := common.BindQuery[dto.AccountListQuery](c)
		if err != nil {
			return err
		}
		accounts, err := svc.List(c.Context(), caller, *query)
		if err != nil {
			log.Errorf("account list failed: %v", err)
			return common.HandleError(c, err)
		}
		views := mapper.ToAccountViews(accounts, caller.Role)
		for i := range views {
			views[i] = withLinks(views[i])
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts found", views)
	}
}

// Get returns a handler that fetches a single account by id.
// @Summary Fetch an account
// @Description Returns one active account. Clients may only fetch accounts they own.
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response "Account found"
// @Failure 400 {object} common.ProblemDetails "Malformed identifier"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /accounts/{id} [get]
// @Security Bearer
func Get(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		a, err := svc.Get(c.Context(), caller, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found",
			withLinks(mapper.ToAccountView(a, caller.Role)))
	}
}

// Create returns a handler that opens a new account owned by the caller.
// @Summary Create an account
// @Description Creates an account. The ownership secret is taken from the caller's token, never from the body.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.AccountInput true "Account details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Router /accounts [post]
// @Security Bearer
func Create(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		input, err := common.BindBody[dto.AccountInput](c)
		if err != nil {
			return err
		}
		a, err := svc.Create(c.Context(), caller, *input)
		if err != nil {
			return common.HandleError(c, err)
		}
		log.Infof("account created: %s", a.ID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created",
			withLinks(mapper.ToAccountView(a, caller.Role)))
	}
}

// Replace returns a handler for full account replacement.
// @Summary Replace an account
// @Description Replaces every writable field of an account after validating the full input.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.AccountInput true "Account details"
// @Success 200 {object} common.Response "Account updated"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /accounts/{id} [put]
// @Security Bearer
func Replace(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		input, err := common.BindBody[dto.AccountInput](c)
		if err != nil {
			return err
		}
		a, err := svc.Replace(c.Context(), caller, id, *input)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated",
			withLinks(mapper.ToAccountView(a, caller.Role)))
	}
}

// Patch returns a handler for partial account updates. Supplied fields are
// merged onto the stored account and the result is re-validated as a whole.
// @Summary Partially update an account
// @Description Merges the supplied fields onto the account and validates the merged result.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.AccountPatch true "Fields to update"
// @Success 200 {object} common.Response "Account updated"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /accounts/{id} [patch]
// @Security Bearer
func Patch(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		patch, err := common.BindBody[dto.AccountPatch](c)
		if err != nil {
			return err
		}
		a, err := svc.Patch(c.Context(), caller, id, *patch)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated",
			withLinks(mapper.ToAccountView(a, caller.Role)))
	}
}

// Delete returns a handler that soft-deletes an account.
// @Summary Delete an account
// @Description Marks the account inactive. The record is kept for audit but disappears from every lookup.
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204 "Account deleted"
// @Failure 400 {object} common.ProblemDetails "Malformed identifier"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /accounts/{id} [delete]
// @Security Bearer
func Delete(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.Context(), caller, id); err != nil {
			return common.HandleError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
