package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/config"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/httpserver"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/logging"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/repo"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/service"
	"github.com/NoobProgram-ai/OaksDonutShop/pkg/db"
	loggingmw "github.com/NoobProgram-ai/OaksDonutShop/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	database, err := db.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Printf("failed to open database: %v", err)
		os.Exit(1)
	}
	if err := db.Migrate(database); err != nil {
		log.Printf("failed to migrate database: %v", err)
		os.Exit(1)
	}
	logger.Info("database ready", "dsn", cfg.DatabaseURL)

	gormRepo := &repo.GormRepo{DB: database}
	menuSvc := &service.MenuService{Repo: gormRepo}
	cartSvc := &service.CartService{Repo: gormRepo}
	orderSvc := &service.OrderService{Repo: gormRepo}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		MenuHandler:  &httpserver.MenuHTTP{Svc: menuSvc},
		CartHandler:  &httpserver.CartHTTP{Menu: menuSvc, Cart: cartSvc},
		OrderHandler: &httpserver.OrderHTTP{Svc: orderSvc},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	logger.Info("shutdown complete")
}
