package main

import (
	"log"
	"net/http"

	_ "covoit/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"covoit/internal/auth"
	"covoit/internal/cache"
	"covoit/internal/config"
	"covoit/internal/db"
	"covoit/internal/handler"
	"covoit/internal/model"
	"covoit/internal/repository"
	"covoit/internal/router"
	"covoit/internal/service"
	"covoit/internal/session"
	"covoit/internal/view"
)

// @title Covoit API
// @version 1.0
// @description Trip booking between agencies, with cookie-based JWT sessions.
// @host localhost:3000
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Agence{},
		&model.Trajet{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	agenceRepo := repository.NewAgenceRepository(gormDB)
	trajetRepo := repository.NewTrajetRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	flashStore := session.NewFlashStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	trajetService := service.NewTrajetService(trajetRepo, userRepo)
	agenceService := service.NewAgenceService(agenceRepo, cfg.AgenceDeletePolicy)
	userService := service.NewUserService(userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, flashStore, cfg.CookieSecure)
	pageHandler := handler.NewPageHandler(trajetService, agenceService, userService, flashStore)
	trajetHandler := handler.NewTrajetHandler(trajetService)
	agenceHandler := handler.NewAgenceHandler(agenceService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		pageHandler,
		trajetHandler,
		agenceHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
