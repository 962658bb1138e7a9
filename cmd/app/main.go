package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/api"
	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/config"
	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/order"
	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/product"
)

func main() {
	cfg := config.Load()

	zlog, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zlog.Sync()

	app := newApp(cfg, zlog)

	zlog.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// newApp wires middleware, services and routes onto a Fiber app.
func newApp(cfg config.Config, zlog *zap.Logger) *fiber.App {
	start := time.Now()

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	setupCORS(app, cfg)
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(api.Err(api.CodeRateLimited, "Too many requests from this IP, please try again later."))
		},
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(start).Seconds(),
		})
	})

	productService := product.NewService(product.NewInMemoryRepository(product.DefaultProducts()))
	productHandler := product.NewHandler(productService)
	productHandler.RegisterRoutes(app)

	orderService := order.NewService(productService).WithObserver(order.LogObserver(zlog))
	orderHandler := order.NewHandler(orderService)
	orderHandler.RegisterRoutes(app)

	// catch-all after routes so unknown paths get the same envelope
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).
			JSON(api.Err(api.CodeNotFound, "Route not found"))
	})

	return app
}

func setupCORS(app *fiber.App, cfg config.Config) {
	origins := []string{cfg.FrontendURL, "http://localhost:4200", "http://localhost:3001"}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))
}

// errorHandler turns unhandled errors into the shared response envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(api.Err(api.CodeInternalError, message))
}
