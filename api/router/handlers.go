package router

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nexuscopier/payments-api/api/config"
	checkoutapp "github.com/nexuscopier/payments-api/api/services/checkout/app"
)

var validate = validator.New()

type handlers struct{ svc checkoutapp.Service }

func newHandlers(svc checkoutapp.Service) handlers { return handlers{svc: svc} }

func (h handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": "payments-api"})
}

func (h handlers) createCheckoutSession(c *fiber.Ctx) error {
	var req checkoutapp.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		// Only plan carries a rule; an absent plan can never match the catalog.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": checkoutapp.ErrInvalidPlan.Error()})
	}

	id, err := h.svc.CreateCheckoutSession(req)
	if err != nil {
		if errors.Is(err, checkoutapp.ErrInvalidPlan) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"sessionId": id})
}

func (h handlers) webhook(c *fiber.Ctx) error {
	if err := h.svc.HandleWebhook(c.Body(), c.Get("Stripe-Signature")); err != nil {
		if errors.Is(err, checkoutapp.ErrBadSignature) {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		// Verified events are always acked; a non-2xx would only trigger redelivery.
		slog.Error("webhook handling failed", "err", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h handlers) referralSales(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", config.MaxSessionPageSize)
	sales, err := h.svc.ReferralSales(int64(limit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"affiliates": sales, "count": len(sales)})
}

func (h handlers) sessionDetail(c *fiber.Ctx) error {
	detail, err := h.svc.SessionDetail(c.Params("id"))
	if err != nil {
		if errors.Is(err, checkoutapp.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(detail)
}

func (h handlers) testGoogleScript(c *fiber.Ctx) error {
	res, err := h.svc.ProbeRegistration(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"reachable": false, "error": err.Error()})
	}
	return c.JSON(res)
}
