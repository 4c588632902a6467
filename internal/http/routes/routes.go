package routes

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopapi/internal/config"
	"shopapi/internal/http/handlers"
	applog "shopapi/internal/log"
	"shopapi/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

func views() *html.Engine {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// New builds the application with its middleware chain and routes.
func New(cfg config.Config, deps *handlers.Deps) *fiber.App {
	bodyLimit := cfg.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = 1 << 20 // 1 MiB
	}
	app := fiber.New(fiber.Config{
		Views:        views(),
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    bodyLimit,
		AppName:      "shopapi",
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(applog.Stamp)
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(helmet.New())
	app.Use(metrics.Middleware)
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				p := c.Path()
				return p == "/healthz" || p == "/metrics"
			},
			LimitReached: func(c *fiber.Ctx) error {
				applog.Security(c, "rate.hit", nil)
				return fiber.ErrTooManyRequests
			},
		}))
	}

	app.Get("/", deps.HomeHandler.Index)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	users := app.Group("/users")
	users.Get("/", deps.UserHandler.List)
	users.Get("/:id", deps.UserHandler.Get)
	users.Post("/", deps.UserHandler.Insert)
	users.Put("/:id", deps.UserHandler.Update)
	users.Delete("/:id", deps.UserHandler.Delete)
	users.Get("/:id/orders", deps.UserHandler.Orders)

	orders := app.Group("/orders")
	orders.Get("/", deps.OrderHandler.List)
	orders.Get("/:id", deps.OrderHandler.Get)
	orders.Post("/", deps.OrderHandler.Place)
	orders.Put("/:id/status", deps.OrderHandler.SetStatus)
	orders.Post("/:id/payment", deps.OrderHandler.Pay)
	orders.Delete("/:id", deps.OrderHandler.Delete)

	products := app.Group("/products")
	products.Get("/", deps.ProductHandler.List)
	products.Get("/:id", deps.ProductHandler.Get)
	products.Post("/", deps.ProductHandler.Insert)
	products.Put("/:id", deps.ProductHandler.Update)
	products.Delete("/:id", deps.ProductHandler.Delete)
	products.Get("/:id/orders", deps.ProductHandler.Orders)

	cats := app.Group("/categories")
	cats.Get("/", deps.CategoryHandler.List)
	cats.Get("/:id", deps.CategoryHandler.Get)
	cats.Post("/", deps.CategoryHandler.Insert)
	cats.Put("/:id", deps.CategoryHandler.Update)
	cats.Delete("/:id", deps.CategoryHandler.Delete)
	cats.Get("/:id/products", deps.CategoryHandler.Products)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "No route for "+c.Method()+" "+c.Path())
	})
	return app
}
