package server

import (
	"encoding/json"
	"net/http"

	"github.com/nebulamart/userservice/internal/domains/dtos"
	"github.com/nebulamart/userservice/pkg/logging"
	"go.uber.org/zap"
)

func (s *server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	writeReport(w, s.checker.Liveness())
}

func (s *server) handleDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	writeReport(w, s.checker.Check(r.Context()))
}

func writeReport(w http.ResponseWriter, report dtos.HealthReport) {
	status := http.StatusOK
	if !report.Up() {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logging.Error("failed to write health report", zap.Error(err))
	}
}
