package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nebulamart/userservice/internal/domains/dtos"
	"github.com/nebulamart/userservice/pkg/logging"
	"go.uber.org/zap"
)

const DefaultTimeout = 5 * time.Second

// Store is the subset of storage.Client the checker needs.
type Store interface {
	ID() string
	Region() string
	Ping(ctx context.Context) error
	TableStatus(ctx context.Context, tableName string) (types.TableStatus, error)
}

type Checker struct {
	store   Store
	tables  []string
	timeout time.Duration
}

func NewChecker(store Store, tables []string, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		store:   store,
		tables:  tables,
		timeout: timeout,
	}
}

// Liveness reports the process is serving. It never touches DynamoDB.
func (c *Checker) Liveness() dtos.HealthReport {
	return dtos.HealthReport{
		Status:   dtos.StatusUp,
		Region:   c.store.Region(),
		ClientId: c.store.ID(),
	}
}

// Check probes DynamoDB and every configured table. The report is DOWN if
// any probe fails or a table is not ACTIVE.
func (c *Checker) Check(ctx context.Context) dtos.HealthReport {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	report := dtos.HealthReport{
		Status:   dtos.StatusUp,
		Region:   c.store.Region(),
		ClientId: c.store.ID(),
	}

	connection := dtos.ComponentHealth{Name: "dynamodb", Status: dtos.StatusUp}
	if err := c.store.Ping(ctx); err != nil {
		logging.Error("dynamodb health check failed",
			zap.String("client_id", c.store.ID()),
			zap.Error(err),
		)
		connection.Status = dtos.StatusDown
		connection.Error = err.Error()
		report.Status = dtos.StatusDown
		report.Components = append(report.Components, connection)
		return report
	}
	report.Components = append(report.Components, connection)

	for _, table := range c.tables {
		component := dtos.ComponentHealth{
			Name:   fmt.Sprintf("dynamodb:%s", table),
			Status: dtos.StatusUp,
		}
		status, err := c.store.TableStatus(ctx, table)
		switch {
		case err != nil:
			logging.Warn("table health check failed", zap.String("table", table), zap.Error(err))
			component.Status = dtos.StatusDown
			component.Error = err.Error()
		case status != types.TableStatusActive:
			component.Status = dtos.StatusDown
			component.Detail = string(status)
		default:
			component.Detail = string(status)
		}
		if component.Status == dtos.StatusDown {
			report.Status = dtos.StatusDown
		}
		report.Components = append(report.Components, component)
	}

	return report
}
