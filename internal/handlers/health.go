package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/nebulamart/userservice/internal/domains/dtos"
	"github.com/nebulamart/userservice/internal/health"
	"github.com/nebulamart/userservice/pkg/logging"
	"go.uber.org/zap"
)

type HealthHandler struct {
	checker *health.Checker
}

func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{
		checker: checker,
	}
}

// Handle serves API Gateway proxy requests. Paths ending in /health/db run
// the DynamoDB check, anything else gets the liveness report.
func (h *HealthHandler) Handle(
	ctx context.Context,
	event events.APIGatewayProxyRequest,
) (
	events.APIGatewayProxyResponse,
	error,
) {
	var report dtos.HealthReport
	if strings.HasSuffix(strings.TrimRight(event.Path, "/"), "/health/db") {
		report = h.checker.Check(ctx)
	} else {
		report = h.checker.Liveness()
	}

	body, err := json.Marshal(report)
	if err != nil {
		logging.Error("Failed to marshal health report", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	statusCode := http.StatusOK
	if !report.Up() {
		statusCode = http.StatusServiceUnavailable
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}
