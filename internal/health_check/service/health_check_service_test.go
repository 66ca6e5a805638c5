package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/record-reconciliation-service/internal/record/model"
)

type staticLookup struct {
	healthy bool
}

func (s *staticLookup) FindByEmail(ctx context.Context, email string) (*model.Record, error) {
	return nil, nil
}

func (s *staticLookup) SearchByName(ctx context.Context, query string) ([]model.Record, error) {
	return []model.Record{}, nil
}

func (s *staticLookup) IsHealthy(ctx context.Context) bool {
	return s.healthy
}

func TestCheckHealth_BothHealthy(t *testing.T) {
	svc := GetHealthCheckService(&staticLookup{healthy: true}, &staticLookup{healthy: true})

	health := svc.CheckHealth(context.Background())

	assert.True(t, health.SourceA)
	assert.True(t, health.SourceB)
	assert.True(t, health.Healthy())
}

func TestCheckHealth_OneSideDown(t *testing.T) {
	svc := GetHealthCheckService(&staticLookup{healthy: true}, &staticLookup{healthy: false})

	health := svc.CheckHealth(context.Background())

	assert.True(t, health.SourceA)
	assert.False(t, health.SourceB)
	assert.False(t, health.Healthy())
}

func TestCheckHealth_BothDown(t *testing.T) {
	svc := GetHealthCheckService(&staticLookup{healthy: false}, &staticLookup{healthy: false})

	health := svc.CheckHealth(context.Background())

	assert.False(t, health.Healthy())
}
