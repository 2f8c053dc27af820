package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"blog-api/internal/config"
	"blog-api/internal/db"
	"blog-api/internal/handlers"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
	"blog-api/internal/middleware"
	"blog-api/internal/store"
)

func newRouter(h *handlers.Handler, m *metrics.Metrics, log *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.RequestLogger(log))
	r.Use(m.Middleware)

	r.Post("/api/signup", h.Auth.SignUp)
	r.Post("/api/login", h.Auth.Login)
	r.Post("/api/posts", h.Posts.CreatePost)

	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(cfg.Env)

	dbConn, err := db.Connect(cfg.Database)
	if err != nil {
		log.Error("db connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbConn.Close()

	pg := store.NewPostgres(dbConn, log)

	// Schema bootstrap failures are logged but do not stop the
	// server; queries against missing tables will fail later.
	if err := pg.EnsureSchema(context.Background()); err != nil {
		log.Error("schema bootstrap failed", slog.String("error", err.Error()))
	}

	h := handlers.NewHandler(pg, pg, cfg.JWTSecret, log)
	m := metrics.New()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(h, m, log),
	}

	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server exited")
}
