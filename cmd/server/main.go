package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/toplustar/Management-tool/docs" // swagger docs

	"github.com/toplustar/Management-tool/internal/auth"
	"github.com/toplustar/Management-tool/internal/cache"
	"github.com/toplustar/Management-tool/internal/config"
	"github.com/toplustar/Management-tool/internal/db"
	"github.com/toplustar/Management-tool/internal/handler"
	"github.com/toplustar/Management-tool/internal/model"
	"github.com/toplustar/Management-tool/internal/repository"
	"github.com/toplustar/Management-tool/internal/router"
	"github.com/toplustar/Management-tool/internal/service"
	"github.com/toplustar/Management-tool/web"
)

// @title HR Time Tracking API
// @version 1.0
// @description Internal HR time-tracking API: daily work reports, dashboards, and user administration.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.DailyReport{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	reportService := service.NewReportService(reportRepo, userRepo)
	dashboardService := service.NewDashboardService(reportRepo)

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	reportHandler := handler.NewReportHandler(reportService)
	myInfoHandler := handler.NewMyInfoHandler(userService)
	adminHandler := handler.NewAdminHandler(userService, reportService)

	router.Register(
		e,
		jwtService,
		userRepo,
		authHandler,
		dashboardHandler,
		reportHandler,
		myInfoHandler,
		adminHandler,
	)
	web.Register(e)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("database close: %v", err)
		}
	}
}
