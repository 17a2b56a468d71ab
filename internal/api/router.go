package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velocar/rental-system/internal/api/handler"
	"github.com/velocar/rental-system/internal/api/middleware"
	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/service"
	"github.com/velocar/rental-system/internal/infrastructure/config"
	mongodb "github.com/velocar/rental-system/internal/infrastructure/db/mongo"
	redisdb "github.com/velocar/rental-system/internal/infrastructure/db/redis"
	"github.com/velocar/rental-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(client *mongo.Client, db *mongo.Database, rdb *goredis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	carRepo := mongodb.NewCarRepository(client, db)
	categoryRepo := mongodb.NewCategoryRepository(client, db)
	reservationRepo := mongodb.NewReservationRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	contractRepo := mongodb.NewContractRepository(db)
	checkoutStore := mongodb.NewCheckoutStore(client, db)
	locks := redisdb.NewLock(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	carService := service.NewCarService(carRepo, categoryRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, carRepo, log)
	reservationService := service.NewReservationService(reservationRepo, carRepo, userRepo, locks, log)
	paymentService := service.NewPaymentService(reservationRepo, paymentRepo, contractRepo, checkoutStore, locks, log)
	contractService := service.NewContractService(contractRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	carHandler := handler.NewCarHandler(carService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	contractHandler := handler.NewContractHandler(contractService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Cars: reads are public, mutations are admin only ---
	cars := e.Group("/v1/cars")
	cars.GET("", carHandler.List)
	cars.GET("/search", carHandler.Search)
	cars.GET("/:id", carHandler.Get)
	cars.POST("", carHandler.Create, authRequired, adminOnly)
	cars.PUT("/:id", carHandler.Update, authRequired, adminOnly)
	cars.DELETE("/:id", carHandler.Delete, authRequired, adminOnly)
	cars.PUT("/:id/categories", carHandler.AttachCategories, authRequired, adminOnly)

	// --- Categories ---
	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authRequired, adminOnly)
	categories.PUT("/:id", categoryHandler.Rename, authRequired, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authRequired, adminOnly)
	categories.PUT("/:id/cars", categoryHandler.AttachCars, authRequired, adminOnly)

	// --- Reservations ---
	reservations := e.Group("/v1/reservations", authRequired)
	reservations.POST("", reservationHandler.Create)
	reservations.GET("/my-reservations", reservationHandler.ListMine)
	reservations.GET("/history", reservationHandler.History)
	reservations.GET("", reservationHandler.ListAll, adminOnly)
	reservations.GET("/search/client", reservationHandler.SearchByClient, adminOnly)
	reservations.GET("/:id", reservationHandler.Get)
	reservations.PATCH("/:id", reservationHandler.UpdateStatus, adminOnly)
	reservations.DELETE("/:id", reservationHandler.Delete, adminOnly)

	// --- Payments ---
	payments := e.Group("/v1/payments", authRequired)
	payments.POST("/checkout", paymentHandler.Checkout)
	payments.GET("/my-history", paymentHandler.MyHistory)

	// --- Contracts ---
	contracts := e.Group("/v1/contracts", authRequired)
	contracts.GET("", contractHandler.ListAll, adminOnly)
	contracts.GET("/my-contracts", contractHandler.ListMine)
	contracts.GET("/:id", contractHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
