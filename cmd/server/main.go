package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "lifehub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lifehub/internal/auth"
	"lifehub/internal/cache"
	"lifehub/internal/config"
	"lifehub/internal/db"
	"lifehub/internal/handler"
	"lifehub/internal/model"
	"lifehub/internal/repository"
	"lifehub/internal/router"
	"lifehub/internal/service"
)

// @title Personal Life Management API
// @version 1.0
// @description Personal projects, ideas and todos behind JWT authentication.
// @host localhost:3001
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
	e.Debug = cfg.IsDevelopment()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.MaxOpenConns)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Idea{},
		&model.Todo{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewResourceRepository[model.Project](gormDB, model.ProjectSchema)
	ideaRepo := repository.NewResourceRepository[model.Idea](gormDB, model.IdeaSchema)
	todoRepo := repository.NewResourceRepository[model.Todo](gormDB, model.TodoSchema)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	projectService := service.NewProjectService(projectRepo)
	ideaService := service.NewIdeaService(ideaRepo)
	todoService := service.NewTodoService(todoRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	ideaHandler := handler.NewIdeaHandler(ideaService)
	todoHandler := handler.NewTodoHandler(todoService)

	// Register routes
	router.Register(
		e,
		cfg,
		gormDB,
		authHandler,
		projectHandler,
		ideaHandler,
		todoHandler,
	)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()
	log.Printf("server listening on :%s (env: %s)", cfg.ServerPort, cfg.Env)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	log.Println("shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("close connection pool: %v", err)
		} else {
			log.Println("database connection pool closed")
		}
	}
}
