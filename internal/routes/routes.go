package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/hydrolog/hydrolog-backend/internal/handlers"
	"github.com/hydrolog/hydrolog-backend/internal/middleware"
	"github.com/hydrolog/hydrolog-backend/internal/services"
)

func Setup(
	app *fiber.App,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	intakeHandler *handlers.IntakeHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Public auth routes with a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authLimiter, authHandler.Login)
	app.Get("/signup", authHandler.SignupForm)
	app.Post("/signup", authLimiter, authHandler.Signup)

	// Everything below passes the session gate
	gate := middleware.RequireSession(authService)

	app.Get("/", gate, authHandler.Home)
	app.Get("/getUser", gate, authHandler.ListUsers)
	app.Get("/logout", gate, authHandler.Logout)

	intake := app.Group("/intake", gate)
	intake.Get("/add", intakeHandler.AddForm)
	intake.Post("/add", intakeHandler.Add)
	intake.Get("/list", intakeHandler.List)
	intake.Post("/difference", intakeHandler.Difference)
	intake.Get("/:id/edit", intakeHandler.EditForm)
	intake.Post("/:id/edit", intakeHandler.Edit)
	intake.Post("/:id/delete", intakeHandler.Delete)
}
