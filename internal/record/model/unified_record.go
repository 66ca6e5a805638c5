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

import "time"

// Winner marks which source supplied the value chosen for a field.
type Winner string

const (
	WinnerA    Winner = "A"
	WinnerB    Winner = "B"
	WinnerBoth Winner = "BOTH"
)

// Identifiers carries the source-local ids that contributed to a unified
// record. A side is nil when that source had no record.
type Identifiers struct {
	SourceAID *string `json:"source_a_id,omitempty"`
	SourceBID *string `json:"source_b_id,omitempty"`
}

// FieldProvenance records which source won a field and whether the two
// sources disagreed. The value pair is populated only on conflict; use the
// FieldAgreement and FieldConflict constructors to keep that invariant.
type FieldProvenance struct {
	WinningSource Winner  `json:"winning_source"`
	Conflict      bool    `json:"conflict"`
	SourceAValue  *string `json:"source_a_value,omitempty"`
	SourceBValue  *string `json:"source_b_value,omitempty"`
}

// FieldAgreement builds provenance for a field the sources did not disagree on.
func FieldAgreement(winner Winner) FieldProvenance {
	return FieldProvenance{WinningSource: winner}
}

// FieldConflict builds provenance for a conflicting field, carrying both
// sources' values for auditing.
func FieldConflict(winner Winner, sourceAValue, sourceBValue *string) FieldProvenance {
	return FieldProvenance{
		WinningSource: winner,
		Conflict:      true,
		SourceAValue:  sourceAValue,
		SourceBValue:  sourceBValue,
	}
}

// Provenance is the merge metadata attached to a unified record.
type Provenance struct {
	Sources           []Source                   `json:"sources"`
	IsPartial         bool                       `json:"is_partial"`
	ConflictsDetected bool                       `json:"conflicts_detected"`
	Fields            map[string]FieldProvenance `json:"fields"`
}

// UnifiedRecord is the merged, provenance-annotated view of a customer built
// from up to two source records sharing the same email.
type UnifiedRecord struct {
	Email             string      `json:"email"`
	Name              string      `json:"name"`
	Address           string      `json:"address"`
	Phone             *string     `json:"phone,omitempty"`
	ContractStartDate *string     `json:"contract_start_date,omitempty"`
	ContractType      *string     `json:"contract_type,omitempty"`
	LastUpdated       time.Time   `json:"last_updated"`
	Identifiers       Identifiers `json:"identifiers"`
	Metadata          Provenance  `json:"metadata"`
}
