package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/pawtopia/petshop-api/internal/api/http"
	"github.com/pawtopia/petshop-api/internal/api/http/handlers"
	"github.com/pawtopia/petshop-api/internal/auth"
	"github.com/pawtopia/petshop-api/internal/config"
	"github.com/pawtopia/petshop-api/internal/events"
	"github.com/pawtopia/petshop-api/internal/observability"
	"github.com/pawtopia/petshop-api/internal/persistence"
	"github.com/pawtopia/petshop-api/internal/repository"
	"github.com/pawtopia/petshop-api/internal/service"
	"github.com/pawtopia/petshop-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	cartItemRepo := repository.NewCartItemRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	orderItemRepo := repository.NewOrderItemRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	addressRepo := repository.NewAddressRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AdminRepo:    adminRepo,
		CustomerRepo: customerRepo,
		CartRepo:     cartRepo,
	}, logger)
	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		logger.Fatal("failed to ensure default admin", zap.Error(err))
	}

	userService := service.NewUserService(customerRepo, addressRepo, cfg.Auth.BcryptCost)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, cartItemRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, productRepo, dispatcher, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, dispatcher, logger)
	reviewService := service.NewReviewService(reviewRepo, orderRepo, dispatcher, logger)
	paymentService := service.NewPaymentService(cfg.Payment, orderRepo, logger)
	oauthService := service.NewOAuthService(customerRepo, cartRepo, authService.TokenService(), cfg.Auth.BcryptCost, logger)
	notificationService := service.NewNotificationService(dispatcher, logger)

	notificationWorker := worker.NewNotificationWorker(notificationService, 0, logger)
	notificationWorker.Start(ctx)

	gate := auth.NewGate(authService.TokenService())
	policy := auth.NewPolicy(auth.DefaultRules())
	googleClient := auth.NewGoogleClient(cfg.OAuth)
	stateStore := auth.NewStateStore(redis.Client, cfg.OAuth.StateTTL())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, cfg.HTTP, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:        handlers.NewUsersHandler(authService, userService),
		Admin:        handlers.NewAdminHandler(authService),
		Products:     handlers.NewProductsHandler(productService),
		Carts:        handlers.NewCartsHandler(cartService),
		Orders:       handlers.NewOrdersHandler(orderService),
		Appointments: handlers.NewAppointmentsHandler(appointmentService),
		Reviews:      handlers.NewReviewsHandler(reviewService),
		Addresses:    handlers.NewAddressesHandler(userService),
		Payments:     handlers.NewPaymentsHandler(paymentService),
		OAuth:        handlers.NewOAuthHandler(googleClient, stateStore, oauthService, cfg.HTTP.FrontendURL, logger),
		Gate:         gate,
		Policy:       policy,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	notificationWorker.Stop()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
