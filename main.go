package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	"github.com/robfig/cron/v3"

	"locallibrary_backend/internals/configs"
	database "locallibrary_backend/internals/databases"
	"locallibrary_backend/internals/features/catalog"
	catalogScheduler "locallibrary_backend/internals/features/catalog/scheduler"
	authScheduler "locallibrary_backend/internals/features/users/auth/scheduler"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/dbtime"
	"locallibrary_backend/internals/helpers/i18n"
	middlewares "locallibrary_backend/internals/middlewares"
	routes "locallibrary_backend/internals/route"
	"locallibrary_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	dbtime.UseLocation(configs.LibraryTimezone)

	cat, err := i18n.NewCatalog(configs.DefaultLocale)
	if err != nil {
		log.Fatalf("i18n init: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// request id + timeout guard matching the DB statement_timeout
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	middlewares.SetupMiddlewares(app, cat)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := database.Register(database.DB, catalog.Schema()); err != nil {
		log.Fatalf("schema register: %v", err)
	}
	if configs.GetEnv("RUN_SEEDS") == "true" {
		seeds.RunAllSeeds(database.DB, cat)
	}

	// scheduler once the DB is ready; "today" follows the library timezone
	jobs := cron.New(cron.WithLocation(dbtime.Location()))
	if _, err := catalogScheduler.RegisterOverdueSweep(jobs, database.DB, configs.OverdueCronSpec); err != nil {
		log.Fatalf("overdue sweep: %v", err)
	}
	if _, err := authScheduler.RegisterBlacklistCleanup(jobs, database.DB); err != nil {
		log.Fatalf("blacklist cleanup: %v", err)
	}
	jobs.Start()

	routes.SetupRoutes(app, database.DB, cat)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("[INFO] Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop jobs, drain requests, close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-jobs.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
