package api

import (
	"smartcash/internal/api/handlers"
	"smartcash/pkg/auth"
	"smartcash/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type RouterConfig struct {
	// LocalMode admits tokenless requests as guest (offline/demo backend).
	LocalMode bool
	// AdminLocalEnabled lifts the admin capability check in local mode.
	AdminLocalEnabled bool
}

func SetupRouter(
	authHandler *handlers.AuthHandler,
	txHandler *handlers.TransactionHandler,
	dashHandler *handlers.DashboardHandler,
	jwtManager *auth.JWTManager,
	cfg RouterConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public); absent on the local backend, which has no
	// account store.
	if authHandler != nil {
		authGroup := app.Group("/user/auth")
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)
		authGroup.Post("/refresh", authHandler.RefreshToken)
	}

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, cfg.LocalMode, appLogger))

	transactions := protected.Group("/transactions")
	transactions.Get("", txHandler.List)
	transactions.Post("", txHandler.Create)
	transactions.Get("/history", txHandler.History)
	transactions.Delete("/:id", txHandler.Delete)

	protected.Get("/stats", dashHandler.Stats)
	protected.Get("/insights", dashHandler.Insights)

	admin := protected.Group("/admin", middleware.RequireAdmin(cfg.AdminLocalEnabled, appLogger))
	admin.Get("/transactions", dashHandler.AdminTransactions)
	admin.Get("/summary", dashHandler.AdminSummary)

	return app
}
