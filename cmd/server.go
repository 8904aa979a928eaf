package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/internlink/internlink/board/account/accountapi"
	"github.com/internlink/internlink/board/application/applicationapi"
	"github.com/internlink/internlink/board/message/messageapi"
	"github.com/internlink/internlink/board/posting/postingapi"
	"github.com/internlink/internlink/board/seeker/seekerapi"
	"github.com/internlink/internlink/pkg/errx"
	"github.com/internlink/internlink/pkg/logx"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting InternLink API Server...")

	// 2. Load Config and Initialize Dependency Container
	cfg := LoadConfig()
	container := NewContainer(cfg)
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "InternLink API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 6. Register Routes
	accountapi.RegisterRoutes(app, container.AccountHandlers, container.AuthMiddleware)
	postingapi.RegisterRoutes(app, container.PostingHandlers, container.AuthMiddleware)
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, container.AuthMiddleware)
	seekerapi.RegisterRoutes(app, container.SeekerHandlers, container.AuthMiddleware)
	messageapi.RegisterRoutes(app, container.MessageHandlers, container.AuthMiddleware)

	// 7. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber's own errors (e.g. route not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Anything unexpected gets full detail in the log and a generic 500 body
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
