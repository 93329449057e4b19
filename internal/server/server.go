package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/instaboost/apiserver/config"
	"github.com/instaboost/apiserver/internal/db"
	"github.com/instaboost/apiserver/internal/handlers"
	"github.com/instaboost/apiserver/internal/services"
	"github.com/instaboost/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	orderRepo := store.NewOrderRepository(dbConn)
	reviewRepo := store.NewReviewRepository(dbConn)
	supportRepo := store.NewSupportMessageRepository(dbConn)

	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(orderRepo)
	reviewService := services.NewReviewService(reviewRepo)
	supportService := services.NewSupportService(supportRepo)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	// The storefront is served from arbitrary origins; mirror the
	// deployed service's allow-everything policy.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/", handlers.Root)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			handlers.AuthRouter(r, userService, cfg.SecretKey)
		})
		r.Route("/orders", func(r chi.Router) {
			handlers.OrderRouter(r, orderService, userService)
		})
		r.Route("/reviews", func(r chi.Router) {
			handlers.ReviewRouter(r, reviewService, userService)
		})
		r.Route("/chat", func(r chi.Router) {
			handlers.ChatRouter(r, supportService)
		})
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
