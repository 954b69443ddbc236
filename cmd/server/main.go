package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meur/crafthub/internal/api"
	"github.com/meur/crafthub/internal/assets"
	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/config"
	"github.com/meur/crafthub/internal/market"
	"github.com/meur/crafthub/internal/obs"
	"github.com/meur/crafthub/internal/storage"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to read .env: %v", err)
	}
	cfg := config.Load()

	// Flags override environment
	flag.StringVar(&cfg.Port, "port", cfg.Port, "Server port")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (empty uses the built-in catalog)")
	flag.StringVar(&cfg.DefaultRegion, "region", cfg.DefaultRegion, "Default price region (am, as, eu)")
	flag.BoolVar(&cfg.PreloadImages, "preload-images", cfg.PreloadImages, "Warm item images in the background")
	staticDir := flag.String("static", "../frontend/dist", "Frontend build directory")
	flag.Parse()

	obs.InitLogger(cfg.LogLevel)

	if _, err := market.LookupRegion(cfg.DefaultRegion); err != nil {
		log.Fatalf("Invalid default region: %v", err)
	}

	cat, err := loadCatalog(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	opts := []market.Option{market.WithRateLimit(cfg.PriceAPIRPS, cfg.PriceAPIBurst)}
	if cfg.PriceAPIBase != "" {
		opts = append(opts, market.WithBaseURL(cfg.PriceAPIBase))
	}
	prices := market.NewCache(market.NewClient(opts...), cfg.PriceCacheTTL)

	var preloader *assets.Preloader
	if cfg.PreloadImages {
		preloader = assets.NewPreloader(assets.RenderBase(cfg.RenderHost), nil)
		defer preloader.Close()
	}

	r := chi.NewRouter()
	r.Mount("/", api.New(cat, prices, preloader, cfg))

	// Serve frontend static files (for production deployment)
	if dir, err := filepath.Abs(*staticDir); err == nil {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			FileServer(r, "/app", http.Dir(dir))
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("🚀 CraftHub API starting on http://localhost:%s", cfg.Port)
	log.Printf("📦 Catalog: %d items, default region %s", cat.Len(), cfg.DefaultRegion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case <-ctx.Done():
		obs.Logger.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			obs.Logger.Error("graceful shutdown failed", "error", err)
		}
	}
}

// loadCatalog prefers stored definitions and falls back to the built-in ones
func loadCatalog(dbPath string) (*catalog.Catalog, error) {
	if dbPath == "" {
		return catalog.Default(), nil
	}

	store, err := storage.New(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	cat, err := store.LoadCatalog()
	if err != nil {
		return nil, err
	}
	if cat == nil {
		obs.Logger.Warn("database has no items, using built-in catalog", "db", dbPath)
		return catalog.Default(), nil
	}
	attrs := []any{"db", dbPath, "items", cat.Len()}
	if run, err := store.LatestImportRun(); err != nil {
		obs.Logger.Warn("reading import runs failed", "error", err)
	} else if run != nil {
		attrs = append(attrs, "last_import", run.Source, "imported_at", run.CreatedAt)
	}
	obs.Logger.Info("catalog loaded from database", attrs...)
	return cat, nil
}

// FileServer conveniently sets up a http.FileServer handler to serve
// static files from a http.FileSystem.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}
