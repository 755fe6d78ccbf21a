package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ecozbite/ai-service/internal/clock"
	"github.com/ecozbite/ai-service/internal/config"
	"github.com/ecozbite/ai-service/internal/handlers"
	"github.com/ecozbite/ai-service/internal/metrics"
	"github.com/ecozbite/ai-service/internal/middleware"
	"github.com/ecozbite/ai-service/internal/repository"
	"github.com/ecozbite/ai-service/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps are the collaborators the router needs. Collector may be nil when
// metrics are disabled.
type Deps struct {
	Config    *config.Config
	Logger    *slog.Logger
	Clock     clock.Clock
	Collector *metrics.Collector
}

// NewRouter wires repositories, services and handlers into a chi router.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	log := deps.Logger

	// Initialize repositories
	shelfLifeRepo := repository.NewInMemoryShelfLifeRepository()

	// Initialize services
	expiryService := service.NewExpiryService(shelfLifeRepo, deps.Clock)
	wasteService := service.NewWasteService(deps.Clock)
	discountService := service.NewDiscountService()

	var recorder handlers.OutcomeRecorder
	if deps.Collector != nil {
		recorder = deps.Collector
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	categoryHandler := handlers.NewCategoryHandler(shelfLifeRepo, log)
	expiryHandler := handlers.NewExpiryHandler(expiryService, recorder, log)
	wasteHandler := handlers.NewWasteHandler(wasteService, recorder, log)
	discountHandler := handlers.NewDiscountHandler(discountService, recorder, log)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	if deps.Collector != nil {
		r.Use(deps.Collector.Middleware)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/categories", categoryHandler.ListCategories)

	r.Post("/predict-expiry", expiryHandler.PredictExpiry)
	r.Post("/analyze-waste", wasteHandler.AnalyzeWaste)
	r.Post("/recommend-discount", discountHandler.RecommendDiscount)

	if deps.Collector != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, deps.Collector.Handler())
	}

	return r
}

// New builds the HTTP server for cfg around handler.
func New(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}
}
