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

// SyncStatus summarizes the outcome of a field-level comparison between the
// two sources' views of one customer.
type SyncStatus string

const (
	SyncStatusInSync           SyncStatus = "in_sync"
	SyncStatusConflictsFound   SyncStatus = "conflicts_found"
	SyncStatusSingleSourceOnly SyncStatus = "single_source_only"
)

// SyncTimestamps carries each side's freshness timestamp, when present.
type SyncTimestamps struct {
	SourceA *time.Time `json:"source_a,omitempty"`
	SourceB *time.Time `json:"source_b,omitempty"`
}

// FieldConflictEntry describes one disagreeing field in a sync report. A nil
// value means that side has no value for the field.
type FieldConflictEntry struct {
	Field        string  `json:"field"`
	SourceAValue *string `json:"source_a_value"`
	SourceBValue *string `json:"source_b_value"`
	NewerSource  Source  `json:"newer_source"`
}

// SyncResult is the diff report for one email across both sources.
type SyncResult struct {
	Email         string               `json:"email"`
	Status        SyncStatus           `json:"status"`
	PresentIn     *Source              `json:"present_in,omitempty"`
	LastUpdated   SyncTimestamps       `json:"last_updated"`
	Conflicts     []FieldConflictEntry `json:"conflicts"`
	MatchedFields []string             `json:"matched_fields"`
}
