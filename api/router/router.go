package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nexuscopier/payments-api/api/config"
	checkoutapp "github.com/nexuscopier/payments-api/api/services/checkout/app"
)

// NewApp builds the Fiber application with the public checkout routes.
// Exact paths are load-bearing: the storefront and the Stripe webhook
// configuration both point at them.
func NewApp(cfg *config.Config, svc checkoutapp.Service) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Origins(), ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,Accept",
		MaxAge:       86400,
	}))

	h := newHandlers(svc)
	app.Get("/", h.health)
	app.Post("/create-checkout-session", h.createCheckoutSession)
	app.Post("/webhook", h.webhook)
	app.Get("/referral-sales", h.referralSales)
	app.Get("/session/:id", h.sessionDetail)
	app.Get("/test-google-script", h.testGoogleScript)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	return app
}
