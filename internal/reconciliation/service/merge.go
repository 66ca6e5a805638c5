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
	errors2 "github.com/wso2/record-reconciliation-service/internal/system/errors"
)

// Merge combines up to two source records for the same email into a unified
// record with per-field provenance. Exactly which source wins a field is
// fixed per field:
//
//   - name: the fresher record wins; A wins a timestamp tie. A conflict is
//     flagged whenever the names differ, even though the choice is
//     deterministic.
//   - phone: B wins when it has a non-empty phone, else A. Source B is the
//     phone authority, so this is never flagged as a conflict.
//   - address: B always wins. A conflict is flagged only when both sides hold
//     non-empty addresses that differ.
//   - contractStartDate, contractType: A wins when present, else B. Source A
//     is the contract authority, never a conflict.
//
// The caller decides partiality; Merge cannot distinguish "not looked up"
// from "looked up and absent" and leaves is_partial false.
//
// Both inputs nil is a caller bug and fails with a server error.
func Merge(a, b *model.Record) (*model.UnifiedRecord, error) {
	switch {
	case a == nil && b == nil:
		return nil, errors2.NewServerError(errors2.MERGE_INPUTS_ABSENT, nil)
	case b == nil:
		return mergeSingle(a), nil
	case a == nil:
		return mergeSingle(b), nil
	}
	return mergeBoth(a, b), nil
}

// mergeSingle copies the one present record verbatim. Each populated field is
// attributed to the present side with no conflicts.
func mergeSingle(r *model.Record) *model.UnifiedRecord {
	winner := winnerFor(r.Source)

	fields := map[string]model.FieldProvenance{
		model.FieldName:    model.FieldAgreement(winner),
		model.FieldAddress: model.FieldAgreement(winner),
	}
	if r.Phone != nil {
		fields[model.FieldPhone] = model.FieldAgreement(winner)
	}
	if r.ContractStartDate != nil {
		fields[model.FieldContractStartDate] = model.FieldAgreement(winner)
	}
	if r.ContractType != nil {
		fields[model.FieldContractType] = model.FieldAgreement(winner)
	}

	unified := &model.UnifiedRecord{
		Email:             r.Email,
		Name:              r.Name,
		Address:           r.Address,
		Phone:             r.Phone,
		ContractStartDate: r.ContractStartDate,
		ContractType:      r.ContractType,
		LastUpdated:       r.LastUpdated,
		Metadata: model.Provenance{
			Sources: []model.Source{r.Source},
			Fields:  fields,
		},
	}

	id := r.ID
	if r.Source == model.SourceA {
		unified.Identifiers.SourceAID = &id
	} else {
		unified.Identifiers.SourceBID = &id
	}
	return unified
}

func mergeBoth(a, b *model.Record) *model.UnifiedRecord {
	fields := make(map[string]model.FieldProvenance, 5)

	// Name: freshness decides the value; B wins only if strictly newer.
	name := a.Name
	nameWinner := model.WinnerA
	if b.LastUpdated.After(a.LastUpdated) {
		name = b.Name
		nameWinner = model.WinnerB
	}
	if a.Name != b.Name {
		aName, bName := a.Name, b.Name
		fields[model.FieldName] = model.FieldConflict(nameWinner, &aName, &bName)
	} else {
		fields[model.FieldName] = model.FieldAgreement(model.WinnerBoth)
	}

	// Phone: asymmetric source authority, never a conflict.
	var phone *string
	if b.Phone != nil && *b.Phone != "" {
		phone = b.Phone
		fields[model.FieldPhone] = model.FieldAgreement(model.WinnerB)
	} else if a.Phone != nil {
		phone = a.Phone
		fields[model.FieldPhone] = model.FieldAgreement(model.WinnerA)
	}

	// Address: B always wins; conflicting only when both sides hold a value.
	address := b.Address
	switch {
	case a.Address != "" && b.Address != "" && a.Address != b.Address:
		aAddr, bAddr := a.Address, b.Address
		fields[model.FieldAddress] = model.FieldConflict(model.WinnerB, &aAddr, &bAddr)
	case a.Address == b.Address:
		fields[model.FieldAddress] = model.FieldAgreement(model.WinnerBoth)
	default:
		fields[model.FieldAddress] = model.FieldAgreement(model.WinnerB)
	}

	// Contract fields: A is the contract authority, never a conflict.
	contractStartDate, startWinner := preferA(a.ContractStartDate, b.ContractStartDate)
	if contractStartDate != nil {
		fields[model.FieldContractStartDate] = model.FieldAgreement(startWinner)
	}
	contractType, typeWinner := preferA(a.ContractType, b.ContractType)
	if contractType != nil {
		fields[model.FieldContractType] = model.FieldAgreement(typeWinner)
	}

	conflictsDetected := false
	for _, provenance := range fields {
		if provenance.Conflict {
			conflictsDetected = true
			break
		}
	}

	lastUpdated := a.LastUpdated
	if b.LastUpdated.After(lastUpdated) {
		lastUpdated = b.LastUpdated
	}

	aID, bID := a.ID, b.ID
	return &model.UnifiedRecord{
		Email:             a.Email,
		Name:              name,
		Address:           address,
		Phone:             phone,
		ContractStartDate: contractStartDate,
		ContractType:      contractType,
		LastUpdated:       lastUpdated,
		Identifiers: model.Identifiers{
			SourceAID: &aID,
			SourceBID: &bID,
		},
		Metadata: model.Provenance{
			Sources:           []model.Source{model.SourceA, model.SourceB},
			ConflictsDetected: conflictsDetected,
			Fields:            fields,
		},
	}
}

func preferA(aValue, bValue *string) (*string, model.Winner) {
	if aValue != nil {
		return aValue, model.WinnerA
	}
	return bValue, model.WinnerB
}

func winnerFor(source model.Source) model.Winner {
	if source == model.SourceA {
		return model.WinnerA
	}
	return model.WinnerB
}
