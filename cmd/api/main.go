package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/jivehq/jive-api/internal/auth"
	"github.com/jivehq/jive-api/internal/config"
	"github.com/jivehq/jive-api/internal/database"
	"github.com/jivehq/jive-api/internal/handler"
	middlewarepkg "github.com/jivehq/jive-api/internal/middleware"
	"github.com/jivehq/jive-api/internal/payment"
	"github.com/jivehq/jive-api/internal/repository"
	"github.com/jivehq/jive-api/internal/router"
	"github.com/jivehq/jive-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	gateway, err := payment.NewStripeClient(cfg.StripeSecretKey, cfg.PaymentCurrency)
	if err != nil {
		log.Fatalf("failed to configure payment gateway: %v", err)
	}

	usersRepo := repository.NewPGXUsersRepository(pool)
	classesRepo := repository.NewPGXClassesRepository(pool)
	selectionsRepo := repository.NewPGXSelectionsRepository(pool)
	paymentsRepo := repository.NewPGXPaymentsRepository(pool)

	authService := service.NewAuthService(usersRepo, jwtManager)
	userService := service.NewUserService(usersRepo)
	classService := service.NewClassService(classesRepo)
	selectionService := service.NewSelectionService(selectionsRepo)
	enrollmentService := service.NewEnrollmentService(paymentsRepo, gateway)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Users:      handler.NewUserHandler(userService),
		UsersAdmin: handler.NewUserAdminHandler(userService),
		Classes:    handler.NewClassHandler(classService),
		ClassAdmin: handler.NewClassAdminHandler(classService),
		Selections: handler.NewSelectionHandler(selectionService),
		Payments:   handler.NewPaymentHandler(enrollmentService),
		OrderAdmin: handler.NewOrderAdminHandler(enrollmentService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
