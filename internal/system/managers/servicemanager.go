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

package managers

import (
	"net/http"
	"strings"

	"github.com/wso2/record-reconciliation-service/internal/sources"
	"github.com/wso2/record-reconciliation-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux     *http.ServeMux
	sourceA sources.Lookup
	sourceB sources.Lookup
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, sourceA, sourceB sources.Lookup) ServiceManagerInterface {

	return &ServiceManager{
		mux:     mux,
		sourceA: sourceA,
		sourceB: sourceB,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	recordService := services.NewRecordService(sm.sourceA, sm.sourceB)
	healthService := services.NewHealthService(sm.sourceA, sm.sourceB)

	// Single dispatcher for the reconciliation API.
	sm.mux.HandleFunc(apiBasePath+"/", func(w http.ResponseWriter, r *http.Request) {
		// Internal path after base path stripping.
		path := strings.TrimPrefix(r.URL.Path, apiBasePath)
		recordService.Route(w, r, path)
	})

	// Health endpoints live outside the API base path and carry no auth.
	sm.mux.HandleFunc("/health", healthService.Route)
	sm.mux.HandleFunc("/ready", healthService.Route)
	return nil
}
