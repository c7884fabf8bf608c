package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nebulamart/userservice/internal/domains/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	pingErr  error
	statuses map[string]types.TableStatus
	deadline bool
}

func (s *fakeStore) ID() string     { return "client-1" }
func (s *fakeStore) Region() string { return "us-east-1" }

func (s *fakeStore) Ping(ctx context.Context) error {
	_, s.deadline = ctx.Deadline()
	return s.pingErr
}

func (s *fakeStore) TableStatus(ctx context.Context, tableName string) (types.TableStatus, error) {
	status, ok := s.statuses[tableName]
	if !ok {
		return "", errors.New("table not found: " + tableName)
	}
	return status, nil
}

func TestLiveness(t *testing.T) {
	store := &fakeStore{pingErr: errors.New("unreachable")}
	report := NewChecker(store, nil, 0).Liveness()

	assert.True(t, report.Up())
	assert.Equal(t, "us-east-1", report.Region)
	assert.Equal(t, "client-1", report.ClientId)
	assert.Empty(t, report.Components)
}

func TestCheckUp(t *testing.T) {
	store := &fakeStore{statuses: map[string]types.TableStatus{"Users": types.TableStatusActive}}
	report := NewChecker(store, []string{"Users"}, time.Second).Check(context.Background())

	assert.True(t, report.Up())
	assert.True(t, store.deadline)
	require.Len(t, report.Components, 2)
	assert.Equal(t, dtos.ComponentHealth{Name: "dynamodb", Status: dtos.StatusUp}, report.Components[0])
	assert.Equal(t, dtos.ComponentHealth{Name: "dynamodb:Users", Status: dtos.StatusUp, Detail: "ACTIVE"}, report.Components[1])
}

func TestCheckPingFailureSkipsTables(t *testing.T) {
	store := &fakeStore{pingErr: errors.New("dial tcp: network is unreachable")}
	report := NewChecker(store, []string{"Users"}, 0).Check(context.Background())

	assert.False(t, report.Up())
	require.Len(t, report.Components, 1)
	assert.Equal(t, dtos.StatusDown, report.Components[0].Status)
	assert.Contains(t, report.Components[0].Error, "unreachable")
}

func TestCheckTableProblems(t *testing.T) {
	store := &fakeStore{statuses: map[string]types.TableStatus{
		"Users":    types.TableStatusActive,
		"Sessions": types.TableStatusCreating,
	}}
	report := NewChecker(store, []string{"Users", "Sessions", "Orders"}, 0).Check(context.Background())

	assert.False(t, report.Up())
	require.Len(t, report.Components, 4)
	assert.Equal(t, dtos.StatusUp, report.Components[1].Status)
	assert.Equal(t, dtos.StatusDown, report.Components[2].Status)
	assert.Equal(t, "CREATING", report.Components[2].Detail)
	assert.Equal(t, dtos.StatusDown, report.Components[3].Status)
	assert.NotEmpty(t, report.Components[3].Error)
}
