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

	"github.com/esenmoda/esen/internal"
	"github.com/esenmoda/esen/internal/catalog"
	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler/admin"
	"github.com/esenmoda/esen/internal/handler/storefront"
	"github.com/esenmoda/esen/internal/middleware"
	"github.com/esenmoda/esen/internal/router"
	"github.com/esenmoda/esen/internal/routes"
	"github.com/esenmoda/esen/internal/service"
	"github.com/esenmoda/esen/internal/shipping"
	"github.com/esenmoda/esen/internal/store"
	"github.com/esenmoda/esen/internal/telemetry"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize Sentry error tracking
	sentryCleanup, err := telemetry.InitSentry(cfg.Sentry, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer sentryCleanup()

	// Initialize the slot store
	st, err := store.New(cfg.Store)
	if err != nil {
		return fmt.Errorf("store initialization failed: %w", err)
	}
	logger.Info("Store initialized", "provider", cfg.Store.Provider)

	// Initialize the catalog
	cat := catalog.NewService(catalog.DefaultProducts(), catalog.DefaultCategories())
	logger.Info("Catalog loaded", "products", len(cat.List()), "categories", len(cat.Categories()))

	// Initialize services
	couponService := service.NewCouponService(ctx, st, logger)
	settingsService := service.NewSettingsService(ctx, cfg.Shipping, st, logger)
	ledgerService := service.NewLedgerService(ctx, st, logger)
	userService := service.NewUserService(ctx, cfg.Admin, st, logger)

	// The cart reads the live policy on every summary, so admin edits
	// take effect without a restart.
	calculator := shipping.NewThresholdCalculator(func() domain.ShippingPolicy {
		return settingsService.ShippingPolicy(context.Background())
	})
	cartService := service.NewCartService(cat, couponService, calculator)

	secure := cfg.Env == "prod"

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	storefrontDeps := routes.StorefrontDeps{
		ProductHandler:  storefront.NewProductHandler(cat),
		CartHandler:     storefront.NewCartHandler(cartService, secure),
		CheckoutHandler: storefront.NewCheckoutHandler(cartService, ledgerService, secure),
		AuthHandler:     storefront.NewAuthHandler(userService, secure),
		AccountHandler:  storefront.NewAccountHandler(userService, ledgerService),
	}

	adminDeps := routes.AdminDeps{
		CouponHandler:   admin.NewCouponHandler(couponService),
		OrderHandler:    admin.NewOrderHandler(ledgerService),
		ProductHandler:  admin.NewProductHandler(cat),
		SettingsHandler: admin.NewSettingsHandler(settingsService),
	}

	// ==========================================================================
	// Initialize middleware
	// ==========================================================================

	// Prometheus metrics
	metrics := middleware.NewMetrics("esen")
	telemetry.InitBusinessMetrics("esen")

	// Rate limiting
	defaultRateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	authRateLimiter := middleware.NewRateLimiter(middleware.StrictRateLimiterConfig())
	defer defaultRateLimiter.Stop()
	defer authRateLimiter.Stop()

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(),
		defaultRateLimiter.Middleware,
		middleware.WithUser(userService),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
		router.CORS([]string{cfg.BaseURL}),
	)

	// Metrics endpoint (no auth required, protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterAdminRoutes(r, adminDeps)

	// Apply stricter rate limiting to credential endpoints
	authRouter := r.Group(authRateLimiter.Middleware)
	authRouter.Post("/login", storefrontDeps.AuthHandler.Login)
	authRouter.Post("/register", storefrontDeps.AuthHandler.Register)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
