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

package handler

import (
	"net/http"

	"github.com/wso2/record-reconciliation-service/internal/reconciliation/service"
	errors2 "github.com/wso2/record-reconciliation-service/internal/system/errors"
	"github.com/wso2/record-reconciliation-service/internal/system/utils"
)

// RecordHandler exposes the reconciliation operations over HTTP.
type RecordHandler struct {
	service service.ReconciliationServiceInterface
}

// NewRecordHandler creates a new instance of RecordHandler.
func NewRecordHandler(svc service.ReconciliationServiceInterface) *RecordHandler {
	return &RecordHandler{
		service: svc,
	}
}

// HandleGetRecord returns the unified record for the email query parameter.
func (h *RecordHandler) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.HandleError(w, missingParamError("email"))
		return
	}

	record, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, record)
}

// HandleSearchRecords returns one unified record per distinct email matching
// the name query parameter on either source.
func (h *RecordHandler) HandleSearchRecords(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		utils.HandleError(w, missingParamError("name"))
		return
	}

	records, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, records)
}

// HandleSyncCheck returns the field-level sync report for the email query
// parameter.
func (h *RecordHandler) HandleSyncCheck(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.HandleError(w, missingParamError("email"))
		return
	}

	result, err := h.service.Sync(r.Context(), email)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

func missingParamError(param string) error {
	msg := errors2.MISSING_QUERY_PARAM
	msg.Description = "The '" + param + "' query parameter is required."
	return errors2.NewClientError(msg, http.StatusBadRequest)
}
