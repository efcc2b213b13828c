package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"lifehub/internal/config"
	"lifehub/internal/db"
	"lifehub/internal/model"
	"lifehub/internal/repository"
)

// Seeds a demo user with a handful of projects, ideas and todos.
// Intended for local development against an empty database.
func main() {
	cfg := config.Load()

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

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	if existing, err := userRepo.FindByEmail(ctx, "demo@example.com"); err == nil && existing != nil {
		log.Println("demo user already exists, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Name:         "Demo User",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("create demo user: %v", err)
	}

	due := time.Now().AddDate(0, 1, 0)

	projects := []model.Project{
		{UserID: user.ID, Title: "Learn woodworking", Category: "hobby", Priority: "medium", Status: "in_progress", Progress: 40},
		{UserID: user.ID, Title: "Plan summer trip", Category: "travel", Priority: "high", Status: "idea", DueDate: &due},
	}
	if err := gormDB.WithContext(ctx).Create(&projects).Error; err != nil {
		log.Fatalf("seed projects: %v", err)
	}

	ideas := []model.Idea{
		{UserID: user.ID, Title: "Build a spice rack", ProjectCategory: "hobby", Priority: "low", Category: "woodworking"},
		{UserID: user.ID, Title: "Visit the coast by train", ProjectCategory: "travel", Priority: "medium"},
	}
	if err := gormDB.WithContext(ctx).Create(&ideas).Error; err != nil {
		log.Fatalf("seed ideas: %v", err)
	}

	todos := []model.Todo{
		{UserID: user.ID, Title: "Book flight", ProjectCategory: "travel", Priority: "high", DueDate: &due},
		{UserID: user.ID, Title: "Order sandpaper", ProjectCategory: "hobby", Priority: "low"},
		{UserID: user.ID, Title: "Renew passport", ProjectCategory: "travel", Priority: "medium", Completed: true},
	}
	if err := gormDB.WithContext(ctx).Create(&todos).Error; err != nil {
		log.Fatalf("seed todos: %v", err)
	}

	log.Printf("seeded demo@example.com with %d projects, %d ideas, %d todos",
		len(projects), len(ideas), len(todos))
}
