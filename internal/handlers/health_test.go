package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nebulamart/userservice/internal/domains/dtos"
	"github.com/nebulamart/userservice/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	pingErr error
	pinged  bool
}

func (s *fakeStore) ID() string     { return "client-1" }
func (s *fakeStore) Region() string { return "us-east-1" }

func (s *fakeStore) Ping(ctx context.Context) error {
	s.pinged = true
	return s.pingErr
}

func (s *fakeStore) TableStatus(ctx context.Context, tableName string) (types.TableStatus, error) {
	return types.TableStatusActive, nil
}

func TestHealthHandlerRoutes(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		pingErr    error
		wantStatus int
		wantPinged bool
	}{
		{name: "liveness", path: "/api/health", pingErr: errors.New("unreachable"), wantStatus: http.StatusOK},
		{name: "db up", path: "/api/health/db", wantStatus: http.StatusOK, wantPinged: true},
		{name: "db trailing slash", path: "/api/health/db/", wantStatus: http.StatusOK, wantPinged: true},
		{name: "db down", path: "/api/health/db", pingErr: errors.New("unreachable"), wantStatus: http.StatusServiceUnavailable, wantPinged: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{pingErr: tt.pingErr}
			h := NewHealthHandler(health.NewChecker(store, nil, 0))

			resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{Path: tt.path})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])
			assert.Equal(t, tt.wantPinged, store.pinged)

			var report dtos.HealthReport
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &report))
			assert.Equal(t, "client-1", report.ClientId)
		})
	}
}
