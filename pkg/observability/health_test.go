package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRegistry_Check(t *testing.T) {
	registry := NewHealthRegistry()
	registry.Register("store", PingChecker("snapshot store", func(context.Context) error { return nil }))
	registry.Register("events", OptionalPingChecker("rabbitmq", func(context.Context) error {
		return errors.New("connection refused")
	}))

	require.Equal(t, 2, registry.Len())

	results := registry.Check(context.Background())
	require.Len(t, results, 2)

	assert.Equal(t, "events", results[0].Name)
	assert.Equal(t, HealthStatusDegraded, results[0].Status)
	assert.Contains(t, results[0].Message, "connection refused")
	assert.False(t, results[0].Timestamp.IsZero())

	assert.Equal(t, "store", results[1].Name)
	assert.Equal(t, HealthStatusHealthy, results[1].Status)
	assert.Equal(t, "snapshot store healthy", results[1].Message)
}

func TestHealthRegistry_EmptyIsHealthy(t *testing.T) {
	results := NewHealthRegistry().Check(context.Background())
	assert.Empty(t, results)
	assert.Equal(t, HealthStatusHealthy, OverallStatus(results))
}

func TestOverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []HealthStatus
		want     HealthStatus
	}{
		{"all healthy", []HealthStatus{HealthStatusHealthy, HealthStatusHealthy}, HealthStatusHealthy},
		{"one degraded", []HealthStatus{HealthStatusHealthy, HealthStatusDegraded}, HealthStatusDegraded},
		{"unhealthy wins", []HealthStatus{HealthStatusDegraded, HealthStatusUnhealthy, HealthStatusHealthy}, HealthStatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make([]HealthCheckResult, 0, len(tt.statuses))
			for _, s := range tt.statuses {
				results = append(results, HealthCheckResult{Status: s})
			}
			assert.Equal(t, tt.want, OverallStatus(results))
		})
	}
}

func TestPingChecker_Failure(t *testing.T) {
	check := PingChecker("database", func(context.Context) error { return errors.New("timeout") })
	result := check(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, "database check failed: timeout", result.Message)
}
