// Package operation exposes the HTTP surface for account operations.
//
// Routes:
//   - GET    /operations              : List operations (paginated, filterable).
//   - GET    /operations/:id          : Fetch one operation.
//   - POST   /operations              : Create a pending operation.
//   - POST   /operations/:id/confirm  : Confirm and apply the amount to the balance.
//   - PUT    /operations/:id          : Replace an operation.
//   - PATCH  /operations/:id          : Partially update an operation.
//   - DELETE /operations/:id          : Soft-delete an operation.
package operation

import (
	"github.com/corebanq/dbank/pkg/config"
	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
	"github.com/corebanq/dbank/pkg/mapper"
	"github.com/corebanq/dbank/pkg/middleware"
	operationsvc "github.com/corebanq/dbank/pkg/service/operation"
	"github.com/corebanq/dbank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const collectionPath = "/operations"

// Routes registers the operation endpoints.
func Routes(app *fiber.App, svc *operationsvc.Service, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Jwt)
	app.Get("/operations", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient, domain.RoleATM),
		List(svc))
	app.Get("/operations/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient, domain.RoleATM, domain.RoleMerchant),
		Get(svc))
	app.Post("/operations", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient, domain.RoleATM),
		Create(svc))
	app.Post("/operations/:id/confirm", jwt,
		middleware.RequireRoles(domain.RoleAdmin),
		Confirm(svc))
	app.Put("/operations/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin),
		Replace(svc))
	app.Patch("/operations/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin),
		Patch(svc))
	app.Delete("/operations/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleMerchant),
		Delete(svc))
}

func withLinks(view dto.OperationView) dto.OperationView {
	view.Links = common.ResourceLinks(collectionPath, view.ID.String())
	return view
}

// List returns a handler that searches operations.
// @Summary List operations
// @Description Lists active operations with pagination and per-field partial-match filters. Clients only see operations on their own accounts; the amount filter is Admin-only.
// @Tags operations
// @Produce json
// @Param interval query int false "Page size (default 20)"
// @Param offset query int false "Offset into the result set"
// @Success 200 {object} common.Response "Operations found"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Router /operations [get]
// @Security Bearer
func List(svc *operationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		query, err := common.BindQuery[dto.OperationListQuery](c)
		if err != nil {
			return err
		}
		operations, err := svc.List(c.Context(), caller, *query)
		if err != nil {
			log.Errorf("operation list failed: %v", err)
			return common.HandleError(c, err)
		}
		views := mapper.ToOperationViews(operations, caller.Role)
		for i := range views {
			views[i] = withLinks(views[i])
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Operations found", views)
	}
}

// Get returns a handler that fetches a single operation by id.
// @Summary Fetch an operation
// @Description Returns one active operation.
// @Tags operations
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} common.Response "Operation found"
// @Failure 400 {object} common.ProblemDetails "Malformed identifier"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /operations/{id} [get]
// @Security Bearer
func Get(svc *operationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		o, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Operation found",
			withLinks(mapper.ToOperationView(o, caller.Role)))
	}
}

// Create returns a handler that records a new pending operation.
// @Summary Create an operation
// @Description Creates a pending operation on an account the caller may access. The balance is untouched until the operation is confirmed.
// @Tags operations
// @Accept json
// @Produce json
// @Param request body dto.OperationInput true "Operation details"
// @Success 201 {object} common.Response "Operation created"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Account or card not found"
// @Router /operations [post]
// @Security Bearer
func Create(svc *operationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		input, err := common.BindBody[dto.OperationInput](c)
		if err != nil {
			return err
		}
		o, err := svc.Create(c.Context(), caller, *input)
		if err != nil {
			return common.HandleError(c, err)
		}
		log.Infof("operation created: %s", o.ID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Operation created",
			withLinks(mapper.ToOperationView(o, caller.Role)))
	}
}

// Confirm returns a handler that confirms an operation. The confirm flag and
// the originating account's balance are persisted in one transaction.
// @Summary Confirm an operation
// @Description Marks the operation confirmed and credits its amount to the originating account, exactly once. A second confirm is rejected.
// @Tags operations
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} common.Response "Operation confirmed"
// @Failure 400 {object} common.ProblemDetails "Malformed identifier"
// @Failure 403 {object} common.ProblemDetails "Already confirmed"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /operations/{id}/confirm [post]
// @Security Bearer
func Confirm(svc *operationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		o, err := svc.Confirm(c.Context(), caller, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		log.Infof("operation confirmed: %s", o.ID)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Operation confirmed",
			withLinks(mapper.ToOperationView(o, caller.Role)))
	}
}

// Replace returns a handler for full operation replacement. Confirmed
// operations reject it.
// @Summary Replace an operation
// @Description Replaces every writable field of a pending operation. Confirmed operations cannot be replaced.
// @Tags operations
// @Accept json
// @Produce json
// @Param id path string true "Operation ID"
// @Param request body dto.OperationInput true "Operation details"
// @Success 200 {object} common.Response "Operation updated"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 403 {object} common.ProblemDetails "Already confirmed"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /operations/{id} [put]
// @Security Bearer
func Replace(svc *operationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		input, err := common.BindBody[dto.OperationInput](c)
		if err != nil {
			return err
		}
		o, err := svc.Replace(c.Context(), caller, id, *input)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Operation updated",
			withLinks(mapper.ToOperationView(o, caller.Role)))
	}
}

// Patch returns a handler for partial operation updates. On a confirmed
// operation only the category remains writable.
// @Summary Partially update an operation
// @Description Merges the supplied fields onto the operation and validates the merged result. After confirmation only the category may change.
// @Tags operations
// @Accept json
// @Produce json
// @Param id path string true "Operation ID"
// @Param request body dto.OperationPatch true "Fields to update"
// @Success 200 {object} common.Response "Operation updated"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 403 {object} common.ProblemDetails "Already confirmed"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /operations/{id} [patch]
// @Security Bearer
func Patch(svc *operationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		patch, err := common.BindBody[dto.OperationPatch](c)
		if err != nil {
			return err
		}
		o, err := svc.Patch(c.Context(), caller, id, *patch)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Operation updated",
			withLinks(mapper.ToOperationView(o, caller.Role)))
	}
}

// Delete returns a handler that soft-deletes an operation. Deleting an
// absent operation succeeds; deleting a confirmed one is rejected.
// @Summary Delete an operation
// @Description Marks the operation inactive. Idempotent for absent operations; confirmed operations cannot be deleted.
// @Tags operations
// @Param id path string true "Operation ID"
// @Success 204 "Operation deleted"
// @Failure 400 {object} common.ProblemDetails "Malformed identifier"
// @Failure 403 {object} common.ProblemDetails "Already confirmed"
// @Router /operations/{id} [delete]
// @Security Bearer
func Delete(svc *operationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.HandleError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
