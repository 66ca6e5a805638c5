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

package utils

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	errors2 "github.com/wso2/record-reconciliation-service/internal/system/errors"
	"github.com/wso2/record-reconciliation-service/internal/system/log"
)

// WriteJSONResponse is a common helper for JSON encoding.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// HandleError sends an HTTP error response based on the provided error.
// Client errors surface their code/message envelope; server errors are logged
// with a generated trace id and answered with a generic 500 body carrying the
// same trace id for correlation.
func HandleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var clientError *errors2.ClientError
	if errors.As(err, &clientError) {
		statusCode := clientError.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			Code:        clientError.Code,
			Message:     clientError.Message,
			Description: clientError.Description,
		})
		return
	}

	logger := log.GetLogger()
	traceID := uuid.New().String()

	var serverError *errors2.ServerError
	if errors.As(err, &serverError) {
		logger.Error(serverError.Error(), log.String("trace_id", traceID))
	} else {
		logger.Error(err.Error(), log.String("trace_id", traceID))
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":    "Internal server error",
		"trace_id": traceID,
	})
}
