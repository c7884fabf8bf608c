package server

import (
	"net/http"
	"time"

	"github.com/nebulamart/userservice/internal/config"
	"github.com/nebulamart/userservice/internal/health"
	"github.com/nebulamart/userservice/pkg/logging"
	"go.uber.org/zap"
)

type server struct {
	address string
	config  config.Config
	checker *health.Checker
}

// NewServer takes the health checker built around the process-wide
// DynamoDB handle; the server never constructs clients itself.
func NewServer(cfg config.Config, checker *health.Checker) *server {
	return &server{
		address: "0.0.0.0:" + cfg.Port,
		config:  cfg,
		checker: checker,
	}
}

func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleLiveness)
	mux.HandleFunc("GET /api/health/db", s.handleDatabaseHealth)
	return mux
}

// Start method    starts the http server
func (s *server) Start() error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		IdleTimeout:       s.config.IdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logging.Info("Http server started", zap.String("address", s.address))
	return srv.ListenAndServe()
}
