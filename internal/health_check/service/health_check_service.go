/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"context"
	"sync"

	"github.com/wso2/record-reconciliation-service/internal/sources"
)

// SourceHealth reports each source backend's liveness independently.
type SourceHealth struct {
	SourceA bool `json:"source_a"`
	SourceB bool `json:"source_b"`
}

// Healthy reports whether both sources answered their probe.
func (h SourceHealth) Healthy() bool {
	return h.SourceA && h.SourceB
}

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckHealth(ctx context.Context) SourceHealth
}

// HealthCheckService probes both source backends concurrently. A failed probe
// is reported as false for that side; there is no combined error.
type HealthCheckService struct {
	sourceA sources.Lookup
	sourceB sources.Lookup
}

// GetHealthCheckService returns a new instance backed by the given source
// adapters.
func GetHealthCheckService(sourceA, sourceB sources.Lookup) HealthCheckServiceInterface {
	return &HealthCheckService{
		sourceA: sourceA,
		sourceB: sourceB,
	}
}

func (h *HealthCheckService) CheckHealth(ctx context.Context) SourceHealth {
	var health SourceHealth
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		health.SourceA = h.sourceA.IsHealthy(ctx)
	}()
	go func() {
		defer wg.Done()
		health.SourceB = h.sourceB.IsHealthy(ctx)
	}()
	wg.Wait()
	return health
}
