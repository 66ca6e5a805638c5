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

package provider

import (
	"github.com/wso2/record-reconciliation-service/internal/reconciliation/service"
	"github.com/wso2/record-reconciliation-service/internal/sources"
)

// ReconciliationProviderInterface defines the interface for the
// reconciliation provider.
type ReconciliationProviderInterface interface {
	GetReconciliationService() service.ReconciliationServiceInterface
}

// ReconciliationProvider is the default implementation of the
// ReconciliationProviderInterface.
type ReconciliationProvider struct {
	sourceA sources.Lookup
	sourceB sources.Lookup
}

// NewReconciliationProvider creates a new instance of ReconciliationProvider
// bound to the two source adapters.
func NewReconciliationProvider(sourceA, sourceB sources.Lookup) ReconciliationProviderInterface {
	return &ReconciliationProvider{
		sourceA: sourceA,
		sourceB: sourceB,
	}
}

// GetReconciliationService returns the reconciliation service instance.
func (rp *ReconciliationProvider) GetReconciliationService() service.ReconciliationServiceInterface {
	return service.GetReconciliationService(rp.sourceA, rp.sourceB)
}
