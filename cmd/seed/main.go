package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/toplustar/Management-tool/internal/config"
	"github.com/toplustar/Management-tool/internal/db"
	"github.com/toplustar/Management-tool/internal/model"
	"github.com/toplustar/Management-tool/internal/repository"
)

// Seeds the initial admin account so a fresh deployment has a login to manage
// users with. Idempotent: an existing admin email is left untouched.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.DailyReport{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up admin user: %v", err)
	}
	if existing != nil {
		log.Printf("Admin user %s already exists, nothing to do", cfg.AdminEmail)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Email:     cfg.AdminEmail,
		Password:  string(hashed),
		FirstName: "System",
		LastName:  "Admin",
		Role:      model.RoleAdmin,
		IsActive:  true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %s", cfg.AdminEmail)
}
