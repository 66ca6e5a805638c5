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
	"github.com/wso2/record-reconciliation-service/internal/record/model"
)

// Diff compares both sources' views of one customer field by field and
// produces a sync report. Both inputs must be present; the caller handles the
// single-source and absent cases.
//
// A field absent on both sides is skipped entirely. Equal values are listed
// as matched; anything else is a conflict annotated with the fresher source
// (A wins a timestamp tie, matching the merge engine). Email is always
// matched: it is the join key and equal by construction.
func Diff(a, b model.Record) model.SyncResult {
	newerSource := model.SourceA
	if b.LastUpdated.After(a.LastUpdated) {
		newerSource = model.SourceB
	}

	matchedFields := []string{model.FieldEmail}
	conflicts := []model.FieldConflictEntry{}

	aName, bName := a.Name, b.Name
	matchedFields, conflicts = compareField(model.FieldName, &aName, &bName, newerSource, matchedFields, conflicts)
	aAddr, bAddr := a.Address, b.Address
	matchedFields, conflicts = compareField(model.FieldAddress, &aAddr, &bAddr, newerSource, matchedFields, conflicts)
	matchedFields, conflicts = compareField(model.FieldPhone, a.Phone, b.Phone, newerSource, matchedFields, conflicts)
	matchedFields, conflicts = compareField(model.FieldContractStartDate, a.ContractStartDate, b.ContractStartDate,
		newerSource, matchedFields, conflicts)
	matchedFields, conflicts = compareField(model.FieldContractType, a.ContractType, b.ContractType,
		newerSource, matchedFields, conflicts)

	status := model.SyncStatusInSync
	if len(conflicts) > 0 {
		status = model.SyncStatusConflictsFound
	}

	aUpdated, bUpdated := a.LastUpdated, b.LastUpdated
	return model.SyncResult{
		Email:  a.Email,
		Status: status,
		LastUpdated: model.SyncTimestamps{
			SourceA: &aUpdated,
			SourceB: &bUpdated,
		},
		Conflicts:     conflicts,
		MatchedFields: matchedFields,
	}
}

// compareField applies the skip/match/conflict rule for one field and appends
// to the running lists.
func compareField(field string, aValue, bValue *string, newerSource model.Source,
	matchedFields []string, conflicts []model.FieldConflictEntry) ([]string, []model.FieldConflictEntry) {

	if aValue == nil && bValue == nil {
		return matchedFields, conflicts
	}
	if aValue != nil && bValue != nil && *aValue == *bValue {
		return append(matchedFields, field), conflicts
	}
	return matchedFields, append(conflicts, model.FieldConflictEntry{
		Field:        field,
		SourceAValue: aValue,
		SourceBValue: bValue,
		NewerSource:  newerSource,
	})
}
