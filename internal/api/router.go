package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/meur/crafthub/internal/assets"
	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/config"
	"github.com/meur/crafthub/internal/market"
)

// Server holds the HTTP server dependencies
type Server struct {
	catalog   *catalog.Catalog
	prices    market.PriceSource
	preloader *assets.Preloader // nil when image preloading is disabled
	cfg       config.Config
	now       func() time.Time
	router    chi.Router
}

// New creates a new API server. preloader may be nil.
func New(cat *catalog.Catalog, prices market.PriceSource, preloader *assets.Preloader, cfg config.Config) *Server {
	if len(cfg.Locations) == 0 {
		cfg.Locations = config.DefaultLocations
	}
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = market.Regions[0].Key
	}
	if cfg.RenderHost == "" {
		cfg.RenderHost = "albiononline.com"
	}

	s := &Server{
		catalog:   cat,
		prices:    prices,
		preloader: preloader,
		cfg:       cfg,
		now:       time.Now,
		router:    chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*"}
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/regions", s.handleGetRegions)

		// Categories
		r.Get("/categories", s.handleGetCategories)
		r.Get("/categories/{id}/path", s.handleGetCategoryPath)

		// Items
		r.Get("/items", s.handleSearchItems)
		r.Get("/base-items", s.handleGetBaseItems)
		r.Get("/items/{id}", s.handleGetItem)
		r.Get("/items/{id}/image", s.handleGetItemImage)

		// Prices
		r.Get("/market/{id}", s.handleGetMarket)
		r.Get("/craft/{id}", s.handleGetCraft)
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
