package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"meetup_backend/configs"
	"meetup_backend/database"
	_ "meetup_backend/docs"
	"meetup_backend/internal/handlers"
	"meetup_backend/internal/repository"
	"meetup_backend/internal/routes"
)

// @title        MeetUp Events API
// @version      1.0
// @description  CRUD backend for the MeetUp events catalog.
// @BasePath     /
func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal("MongoDB connection error: ", err)
	}
	log.Println("MongoDB connected")

	store := repository.NewEventRepository(client.Database(cfg.DBName))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowedOrigin}))

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, store)

	// Unknown routes, after everything else.
	app.Use(handlers.NotFound())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		database.DisconnectMongo(client)
		log.Fatal(err)
	}
	database.DisconnectMongo(client)
}
