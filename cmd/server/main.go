package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"                      // Optional .env loading for local runs
	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware

	"seatbooking/internal/config"           // Internal config loader
	"seatbooking/internal/handler"          // HTTP handlers
	appmw "seatbooking/internal/middleware" // Response cache middleware
	"seatbooking/internal/repository"       // Flat-file reservation store
	"seatbooking/internal/router"           // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; existing env vars win

	cfg := config.Load()                 // Load environment config
	cacheCfg := config.LoadCacheConfig() // Response cache settings
	rdb := config.NewRedisClient()       // nil when caching is disabled

	repo := repository.NewReservationRepo(cfg.DataFile)
	h := handler.NewReservationHandler(repo, rdb, cacheCfg.Prefix)

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(echomw.Logger())  // Request logging
	e.Use(echomw.Recover()) // Panic recovery
	router.RegisterRoutes(e, h, appmw.Cache(cacheCfg, rdb))

	addr := ":" + cfg.Port // Address string with port
	log.Printf("listening on %s (env=%s store=%s cache=%t)", addr, cfg.Env, cfg.DataFile, rdb != nil)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
