package main

import (
	"log"

	"auth-service/config"
	"auth-service/internal/handler"
	"auth-service/internal/repository"
	"auth-service/internal/server"
	"auth-service/internal/services"
	"auth-service/pkg/logger"
)

func main() {
	// A missing JWT secret fails here, before anything is listening.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	accountRepo := repository.NewMemoryAccountRepository()
	accountService := services.NewAccountService(accountRepo, cfg)
	tokenService, err := services.NewTokenService(cfg)
	if err != nil {
		l.Fatalf("Failed to build token service: %v", err)
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth: handler.NewAuthHandler(accountService, tokenService, cfg),
	}, tokenService)

	if err := srv.Start(); err != nil {
		l.Fatalf("Server error: %v", err)
	}
}
