package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"booking-ops/config"
	"booking-ops/router"
)

func main() {
	config.LoadDotenv()

	app := fiber.New()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.Port()))
}
