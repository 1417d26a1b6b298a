package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/marianotrogo/client-pos-ind/internal/application/service"
	"github.com/marianotrogo/client-pos-ind/internal/config"
	"github.com/marianotrogo/client-pos-ind/internal/infrastructure/backend"
	"github.com/marianotrogo/client-pos-ind/internal/infrastructure/session"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/handler"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/routes"
	"github.com/marianotrogo/client-pos-ind/pkg/printer"
	"github.com/marianotrogo/client-pos-ind/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret)

	// Initialize the in-memory session store
	sessions := session.NewStore(cfg.Session.TTL)
	defer sessions.Close()

	// Initialize the sales backend client
	backendClient := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	cartService := service.NewCartService(sessions)
	receiptService := service.NewReceiptService(thermalPrinter, backendClient)
	checkoutService := service.NewCheckoutService(sessions, backendClient, receiptService)
	lookupService := service.NewLookupService(sessions, backendClient)
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session:  handler.NewSessionHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Lookup:   handler.NewLookupHandler(lookupService),
		Settings: handler.NewSettingsHandler(backendClient),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
