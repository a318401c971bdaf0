// Package card exposes the HTTP surface for payment cards.
//
// Routes:
//   - GET    /cards                     : List cards (paginated, filterable).
//   - GET    /cards/:id                 : Fetch one card.
//   - POST   /cards                     : Create a card.
//   - PUT    /cards/:id                 : Replace a card.
//   - PATCH  /cards/:id                 : Partially update a card.
//   - DELETE /cards/:id                 : Soft-delete a card.
//   - POST   /cards/:id/code/check      : Verify a PIN code.
//   - POST   /cards/identity/check      : Verify number, cryptogram, expiration.
//   - POST   /cards/:id/expire          : Expire a card.
package card

import (
	"github.com/corebanq/dbank/pkg/config"
	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
	"github.com/corebanq/dbank/pkg/mapper"
	"github.com/corebanq/dbank/pkg/middleware"
	cardsvc "github.com/corebanq/dbank/pkg/service/card"
	"github.com/corebanq/dbank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const collectionPath = "/cards"

// Routes registers the card endpoints.
func Routes(app *fiber.App, svc *cardsvc.Service, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Jwt)
	app.Get("/cards", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		List(svc))
	// identity/check must register before :id so "identity" is not parsed
	// as a card id.
	app.Post("/cards/identity/check", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleMerchant),
		CheckIdentity(svc))
	app.Get("/cards/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Get(svc))
	app.Post("/cards", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Create(svc))
	app.Put("/cards/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Replace(svc))
	app.Patch("/cards/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Patch(svc))
	app.Delete("/cards/:id", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleClient),
		Delete(svc))
	app.Post("/cards/:id/code/check", jwt,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleATM),
		CheckCode(svc))
	app.Post("/cards/:id/expire", jwt,
		middleware.RequireRoles(domain.RoleAdmin),
		Expire(svc))
}

func withLinks(view dto.CardView) dto.CardView {
	view.Links = common.ResourceLinks(collectionPath, view.ID.String())
	return view
}

// List returns a handler that searches cards.
// @Summary List cards
// @Description Lists active cards with pagination and per-field partial-match filters. Clients only see cards on their own accounts; some filters are Admin-only.
// @Tags cards
// @Produce json
// @Param interval query int false "Page size (default 20)"
// @Param offset query int false "Offset into the result set"
// @Success 200 {object} common.Response "Cards found"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Router /cards [get]
// @Security Bearer
func List(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		query, err := common.BindQuery[dto.CardListQuery](c)
		if err != nil {
			return err
		}
		cards, err := svc.List(c.Context(), caller, *query)
		if err != nil {
			log.Errorf("card list failed: %v", err)
			return common.HandleError(c, err)
		}
		views := mapper.ToCardViews(cards, caller.Role)
		for i := range views {
			views[i] = withLinks(views[i])
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cards found", views)
	}
}

// Get returns a handler that fetches a single card by id.
// @Summary Fetch a card
// @Description Returns one active card. The number is masked for non-Admin callers.
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} common.Response "Card found"
// @Failure 400 {object} common.ProblemDetails "Malformed identifier"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /cards/{id} [get]
// @Security Bearer
func Get(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		card, err := svc.Get(c.Context(), caller, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Card found",
			withLinks(mapper.ToCardView(card, caller.Role)))
	}
}

// Create returns a handler that issues a new card on an account.
// @Summary Create a card
// @Description Creates a card on an account the caller may access. The PIN code is stored hashed and never echoed back.
// @Tags cards
// @Accept json
// @Produce json
// @Param request body dto.CardInput true "Card details"
// @Success 201 {object} common.Response "Card created"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /cards [post]
// @Security Bearer
func Create(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		input, err := common.BindBody[dto.CardInput](c)
		if err != nil {
			return err
		}
		card, err := svc.Create(c.Context(), caller, *input)
		if err != nil {
			return common.HandleError(c, err)
		}
		log.Infof("card created: %s", card.ID)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Card created",
			withLinks(mapper.ToCardView(card, caller.Role)))
	}
}

// Replace returns a handler for full card replacement. Blocked and expired
// cards reject it.
// @Summary Replace a card
// @Description Replaces every writable field of an active card. Blocked or expired cards cannot be edited.
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body dto.CardInput true "Card details"
// @Success 200 {object} common.Response "Card updated"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 403 {object} common.ProblemDetails "Forbidden or card locked"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /cards/{id} [put]
// @Security Bearer
func Replace(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		input, err := common.BindBody[dto.CardInput](c)
		if err != nil {
			return err
		}
		card, err := svc.Replace(c.Context(), caller, id, *input)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Card updated",
			withLinks(mapper.ToCardView(card, caller.Role)))
	}
}

// Patch returns a handler for partial card updates.
// @Summary Partially update a card
// @Description Merges the supplied fields onto the card and validates the merged result. Blocked or expired cards cannot be edited.
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body dto.CardPatch true "Fields to update"
// @Success 200 {object} common.Response "Card updated"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 403 {object} common.ProblemDetails "Forbidden or card locked"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /cards/{id} [patch]
// @Security Bearer
func Patch(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		patch, err := common.BindBody[dto.CardPatch](c)
		if err != nil {
			return err
		}
		card, err := svc.Patch(c.Context(), caller, id, *patch)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Card updated",
			withLinks(mapper.ToCardView(card, caller.Role)))
	}
}

// Delete returns a handler that soft-deletes a card.
// @Summary Delete a card
// @Description Marks the card inactive. The record is kept for audit.
// @Tags cards
// @Param id path string true "Card ID"
// @Success 204 "Card deleted"
// @Failure 400 {object} common.ProblemDetails "Malformed identifier"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /cards/{id} [delete]
// @Security Bearer
func Delete(svc *cardsvc.Service) fiber.Handler {
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

// CheckCode returns a handler that verifies a card's PIN. The stored hash
// never leaves the server; the response only says whether the code matched.
// @Summary Verify a card PIN
// @Description Compares the supplied PIN against the card's stored hash and reports the outcome.
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body dto.CardCodeInput true "PIN code"
// @Success 200 {object} common.Response "Check performed"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /cards/{id}/code/check [post]
// @Security Bearer
func CheckCode(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		input, err := common.BindBody[dto.CardCodeInput](c)
		if err != nil {
			return err
		}
		checked, err := svc.CheckCode(c.Context(), id, *input)
		if err != nil {
			return common.HandleError(c, err)
		}
		result := dto.CheckResult{Checked: checked, Message: "code does not match"}
		if checked {
			result.Message = "code matches"
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Code checked", result)
	}
}

// CheckIdentity returns a handler that verifies a card's number, cryptogram
// and expiration date triplet against the active card records.
// @Summary Verify a card identity
// @Description Reports whether an active card matches the supplied number, cryptogram and expiration date.
// @Tags cards
// @Accept json
// @Produce json
// @Param request body dto.CardIdentityInput true "Card identity"
// @Success 200 {object} common.Response "Check performed"
// @Failure 400 {object} common.ProblemDetails "Validation failed"
// @Router /cards/identity/check [post]
// @Security Bearer
func CheckIdentity(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindBody[dto.CardIdentityInput](c)
		if err != nil {
			return err
		}
		checked, err := svc.CheckIdentity(c.Context(), *input)
		if err != nil {
			return common.HandleError(c, err)
		}
		result := dto.CheckResult{Checked: checked, Message: "no matching card"}
		if checked {
			result.Message = "card identity matches"
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Identity checked", result)
	}
}

// Expire returns a handler that moves a card to its terminal expired state.
// Expiring an already expired card is a no-op.
// @Summary Expire a card
// @Description Marks the card expired. Idempotent; a second call returns the same terminal state.
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} common.Response "Card expired"
// @Failure 400 {object} common.ProblemDetails "Malformed identifier"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /cards/{id}/expire [post]
// @Security Bearer
func Expire(svc *cardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromCtx(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		id, err := common.PathUUID(c, "id")
		if err != nil {
			return err
		}
		card, err := svc.Expire(c.Context(), id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Card expired",
			withLinks(mapper.ToCardView(card, caller.Role)))
	}
}
