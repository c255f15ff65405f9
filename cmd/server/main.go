package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pasko-evg/superlists/internal/auth"
	"github.com/pasko-evg/superlists/internal/cache"
	"github.com/pasko-evg/superlists/internal/config"
	"github.com/pasko-evg/superlists/internal/db"
	"github.com/pasko-evg/superlists/internal/handler"
	"github.com/pasko-evg/superlists/internal/mail"
	"github.com/pasko-evg/superlists/internal/model"
	"github.com/pasko-evg/superlists/internal/repository"
	"github.com/pasko-evg/superlists/internal/router"
	"github.com/pasko-evg/superlists/internal/service"
	"github.com/pasko-evg/superlists/internal/view"
)

func main() {
	cfg := config.Load()

	e := echo.New()

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
		&model.Token{},
		&model.List{},
		&model.Item{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	listRepo := repository.NewListRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)

	// Initialize auth components
	sessionService := auth.NewSessionService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	listService := service.NewListService(listRepo, userRepo)
	authService := service.NewAuthService(tokenRepo, userRepo, mailer, cfg.SiteURL, cfg.MailFrom)

	// Initialize handlers
	listHandler := handler.NewListHandler(listService)
	authHandler := handler.NewAuthHandler(authService, sessionService, sessionStore)

	// Register routes
	router.Register(e, cfg, sessionStore, listHandler, authHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
