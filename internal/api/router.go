package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/praktyka/records-api/internal/api/handler"
	"github.com/praktyka/records-api/internal/api/middleware"
	"github.com/praktyka/records-api/internal/core/service"
	"github.com/praktyka/records-api/internal/core/token"
	mongodb "github.com/praktyka/records-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, tokens *token.Manager, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("records"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	accountService := service.NewAccountService(userRepo, tokens, log)
	accountHandler := handler.NewAccountHandler(accountService)

	catalogService := service.NewCatalogService(
		mongodb.NewClientRepository(db),
		mongodb.NewOfferingRepository(db),
		mongodb.NewContractRepository(db),
		log,
	)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	authRequired := middleware.Auth(tokens)

	// --- Auth & user management routes ---
	auth := e.Group("/auth")
	auth.POST("/register", accountHandler.Register)
	auth.POST("/login", accountHandler.Login)
	auth.GET("/users", accountHandler.List, authRequired)
	auth.GET("/users/:id", accountHandler.Get, authRequired)
	auth.PATCH("/users/:id", accountHandler.Update, authRequired)
	auth.DELETE("/users/:id", accountHandler.Delete, authRequired)
	auth.GET("/profile", accountHandler.Profile, authRequired)

	// --- Catalog routes ---
	e.POST("/clients", catalogHandler.CreateClient)
	e.GET("/clients", catalogHandler.ListClients)
	e.GET("/clients/:id", catalogHandler.GetClient)
	e.DELETE("/clients/:id", catalogHandler.DeleteClient)

	e.POST("/services", catalogHandler.CreateOffering)
	e.GET("/services", catalogHandler.ListOfferings)
	e.GET("/services/:id", catalogHandler.GetOffering)
	e.DELETE("/services/:id", catalogHandler.DeleteOffering)

	e.POST("/contracts", catalogHandler.CreateContract)
	e.GET("/contracts", catalogHandler.ListContracts)
	e.GET("/contracts/:id", catalogHandler.GetContract)
	e.DELETE("/contracts/:id", catalogHandler.DeleteContract)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
