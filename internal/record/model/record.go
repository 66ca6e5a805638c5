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

package model

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	errors2 "github.com/wso2/record-reconciliation-service/internal/system/errors"
)

// Source identifies which backend produced a record view.
type Source string

const (
	SourceA Source = "A"
	SourceB Source = "B"
)

// Field names used in provenance maps, conflict entries and matched-field
// lists. Email is the join key and is handled separately from the five
// comparable fields.
const (
	FieldEmail             = "email"
	FieldName              = "name"
	FieldAddress           = "address"
	FieldPhone             = "phone"
	FieldContractStartDate = "contractStartDate"
	FieldContractType      = "contractType"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Record is one source's view of a customer. Name and address are required
// by both sources (a source may still supply an empty placeholder); phone and
// the contract fields are optional and nil when the source has no value.
type Record struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Phone             *string   `json:"phone,omitempty"`
	ContractStartDate *string   `json:"contract_start_date,omitempty"`
	ContractType      *string   `json:"contract_type,omitempty"`
	LastUpdated       time.Time `json:"last_updated"`
	Source            Source    `json:"source"`
}

// NormalizeEmail lower-cases and trims an email and validates it against the
// join-key format. The normalized email is the only identity key shared by
// the two sources.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(normalized) {
		return "", errors2.NewClientError(errors2.INVALID_EMAIL, http.StatusBadRequest)
	}
	return normalized, nil
}

// NewRecord builds a Record with a normalized email. Construction fails when
// the email does not validate, so every Record in the system carries a
// well-formed join key.
func NewRecord(id, email, name, address string, phone, contractStartDate, contractType *string,
	lastUpdated time.Time, source Source) (*Record, error) {

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	return &Record{
		ID:                id,
		Email:             normalized,
		Name:              name,
		Address:           address,
		Phone:             phone,
		ContractStartDate: contractStartDate,
		ContractType:      contractType,
		LastUpdated:       lastUpdated,
		Source:            source,
	}, nil
}
