package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kc414/config"
	"kc414/logger"
	"kc414/mail"
	"kc414/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// APIHandler holds dependencies for HTTP handlers. The repositories are
// constructed once at startup and held for the process lifetime.
type APIHandler struct {
	catalogRepo repository.CatalogRepository
	bookingRepo repository.BookingRepository
	mailer      mail.Mailer
	cfg         *config.Config
	validate    *validator.Validate
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(catalogRepo repository.CatalogRepository, bookingRepo repository.BookingRepository, mailer mail.Mailer, cfg *config.Config) *APIHandler {
	return &APIHandler{
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
		mailer:      mailer,
		cfg:         cfg,
		validate:    validator.New(),
	}
}

// Router builds the full route table with middleware applied.
func (h *APIHandler) Router() *mux.Router {
	router := mux.NewRouter()

	router.Use(recoveryMiddleware)
	router.Use(corsMiddleware(h.cfg.FrontendURL))
	router.Use(loggingMiddleware)

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	// Catalog endpoints
	router.HandleFunc("/api/products", h.GetProductsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/products/{id}", h.GetProductHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks", h.GetTracksHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks/{id}", h.GetTrackHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks/{id}/products", h.GetRelatedProductsHandler).Methods(http.MethodGet)

	// Booking and contact endpoints
	router.HandleFunc("/api/bookings", h.CreateBookingHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/contact", h.CreateContactHandler).Methods(http.MethodPost)

	// Order submission
	router.HandleFunc("/api/orders", h.CreateOrderHandler).Methods(http.MethodPost)

	// Preflight requests are answered by the CORS middleware; this route just
	// keeps mux from rejecting OPTIONS with a 405 before the middleware runs.
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}

// HealthHandler reports liveness.
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "kc414",
	})
}

// Start initializes and starts the HTTP server, blocking until shutdown.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})

	catalogRepo := repository.NewMemoryCatalogRepository()
	bookingRepo := repository.NewMemoryBookingRepository()
	mailer := mail.NewFromConfig(cfg)

	apiHandler := NewAPIHandler(catalogRepo, bookingRepo, mailer, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      apiHandler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			logger.String("port", cfg.Port),
			logger.String("allowedOrigin", cfg.FrontendURL),
			logger.Bool("mailEnabled", mailer.Enabled()))

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("server stopped")
}
