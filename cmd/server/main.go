package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "tripplanner/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tripplanner/internal/auth"
	"tripplanner/internal/cache"
	"tripplanner/internal/config"
	"tripplanner/internal/db"
	"tripplanner/internal/handler"
	"tripplanner/internal/model"
	"tripplanner/internal/policy"
	"tripplanner/internal/repository"
	"tripplanner/internal/router"
	"tripplanner/internal/service"
)

// @title Trip Planner API
// @version 1.0
// @description Multi-tenant trip planning API with collaborator roles and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.TravelRequirement{},
			&model.Activity{},
			&model.TripMember{},
			&model.Trip{},
			&model.Location{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Trip{},
		&model.TripMember{},
		&model.Location{},
		&model.Activity{},
		&model.TravelRequirement{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)
	memberRepo := repository.NewTripMemberRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	locationRepo := repository.NewLocationRepository(gormDB)
	requirementRepo := repository.NewTravelRequirementRepository(gormDB)

	// Initialize auth components and the access policy engine
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	engine := policy.NewEngine(tripRepo, memberRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	tripService := service.NewTripService(tripRepo, memberRepo, activityRepo, requirementRepo)
	memberService := service.NewTripMemberService(engine, memberRepo)
	activityService := service.NewActivityService(engine, activityRepo)
	locationService := service.NewLocationService(locationRepo, cacheClient)
	requirementService := service.NewTravelRequirementService(engine, requirementRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tripHandler := handler.NewTripHandler(tripService)
	memberHandler := handler.NewTripMemberHandler(memberService)
	activityHandler := handler.NewActivityHandler(activityService)
	locationHandler := handler.NewLocationHandler(locationService)
	requirementHandler := handler.NewTravelRequirementHandler(requirementService)
	seedHandler := handler.NewSeedHandler(authService, tripService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		tripHandler,
		memberHandler,
		activityHandler,
		locationHandler,
		requirementHandler,
		seedHandler,
	)

	swaggerURL := "http://localhost:5000/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := cfg.SwaggerHost
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			host = "http://" + host
		}
		swaggerURL = host + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
