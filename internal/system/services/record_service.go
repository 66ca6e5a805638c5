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

package services

import (
	"net/http"
	"strings"

	"github.com/wso2/record-reconciliation-service/internal/reconciliation/handler"
	"github.com/wso2/record-reconciliation-service/internal/reconciliation/provider"
	"github.com/wso2/record-reconciliation-service/internal/sources"
	"github.com/wso2/record-reconciliation-service/internal/system/authn"
)

// RecordService handles routing for the reconciliation API endpoints.
type RecordService struct {
	handler *handler.RecordHandler
}

// NewRecordService creates a new RecordService instance bound to the two
// source adapters.
func NewRecordService(sourceA, sourceB sources.Lookup) *RecordService {
	reconciliationProvider := provider.NewReconciliationProvider(sourceA, sourceB)
	return &RecordService{
		handler: handler.NewRecordHandler(reconciliationProvider.GetReconciliationService()),
	}
}

// Route dispatches reconciliation requests. The path is expected to be
// stripped of the API base path by the service manager.
func (s *RecordService) Route(w http.ResponseWriter, r *http.Request, path string) {

	path = strings.TrimSuffix(path, "/")
	method := r.Method

	switch {
	case method == http.MethodGet && path == "/records":
		authn.Middleware(s.handler.HandleGetRecord)(w, r)

	case method == http.MethodGet && path == "/records/search":
		authn.Middleware(s.handler.HandleSearchRecords)(w, r)

	case method == http.MethodGet && path == "/sync":
		authn.Middleware(s.handler.HandleSyncCheck)(w, r)

	default:
		http.NotFound(w, r)
	}
}
