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
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/wso2/record-reconciliation-service/internal/record/model"
	"github.com/wso2/record-reconciliation-service/internal/sources"
	errors2 "github.com/wso2/record-reconciliation-service/internal/system/errors"
	"github.com/wso2/record-reconciliation-service/internal/system/log"
)

// ReconciliationServiceInterface defines the service interface.
type ReconciliationServiceInterface interface {
	GetByEmail(ctx context.Context, email string) (*model.UnifiedRecord, error)
	SearchByName(ctx context.Context, query string) ([]model.UnifiedRecord, error)
	Sync(ctx context.Context, email string) (*model.SyncResult, error)
}

// ReconciliationService orchestrates identity lookups against both sources
// and runs the merge/diff engines over the results. It holds no state across
// calls; the two adapters are injected at construction.
type ReconciliationService struct {
	sourceA sources.Lookup
	sourceB sources.Lookup
}

// GetReconciliationService returns a new instance backed by the given source
// adapters.
func GetReconciliationService(sourceA, sourceB sources.Lookup) ReconciliationServiceInterface {
	return &ReconciliationService{
		sourceA: sourceA,
		sourceB: sourceB,
	}
}

// GetByEmail fetches both sources' views of an email concurrently and merges
// them. A lookup that errors degrades to absent; only both sides absent is a
// not-found failure. The partial flag is owned here: the merge engine cannot
// know both lookups were actually attempted.
func (s *ReconciliationService) GetByEmail(ctx context.Context, email string) (*model.UnifiedRecord, error) {
	normalized, err := model.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	a, b := s.findBoth(ctx, normalized)
	if a == nil && b == nil {
		return nil, errors2.NewClientError(errors2.RECORD_NOT_FOUND, http.StatusNotFound)
	}

	unified, err := Merge(a, b)
	if err != nil {
		return nil, err
	}
	unified.Metadata.IsPartial = (a == nil) != (b == nil)
	return unified, nil
}

// SearchByName runs the name search against both sources concurrently and
// merges the results per distinct email. An email found by only one side's
// name search is cross-referenced with a direct by-email lookup against the
// other side, so a spelling difference that defeats one source's name match
// does not produce a needlessly partial record.
func (s *ReconciliationService) SearchByName(ctx context.Context, query string) ([]model.UnifiedRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.UnifiedRecord{}, nil
	}

	logger := log.GetLogger()
	var aResults, bResults []model.Record
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		results, err := s.sourceA.SearchByName(ctx, query)
		if err != nil {
			logger.Debug("Source A name search failed, treating as empty", log.Error(err))
			return
		}
		aResults = results
	}()
	go func() {
		defer wg.Done()
		results, err := s.sourceB.SearchByName(ctx, query)
		if err != nil {
			logger.Debug("Source B name search failed, treating as empty", log.Error(err))
			return
		}
		bResults = results
	}()
	wg.Wait()

	aByEmail := make(map[string]*model.Record, len(aResults))
	bByEmail := make(map[string]*model.Record, len(bResults))
	var emails []string
	for i := range aResults {
		record := aResults[i]
		if _, seen := aByEmail[record.Email]; !seen {
			aByEmail[record.Email] = &record
			emails = append(emails, record.Email)
		}
	}
	for i := range bResults {
		record := bResults[i]
		if _, seen := bByEmail[record.Email]; seen {
			continue
		}
		bByEmail[record.Email] = &record
		if _, seen := aByEmail[record.Email]; !seen {
			emails = append(emails, record.Email)
		}
	}

	// Cross-reference: for every email only one side's search produced, try a
	// direct by-email lookup against the other side. The one-sided emails are
	// collected up front so the goroutines are the only map writers in flight.
	type crossRef struct {
		email     string
		presentIn model.Source
	}
	var refs []crossRef
	for _, email := range emails {
		_, inA := aByEmail[email]
		_, inB := bByEmail[email]
		switch {
		case inA && !inB:
			refs = append(refs, crossRef{email: email, presentIn: model.SourceA})
		case inB && !inA:
			refs = append(refs, crossRef{email: email, presentIn: model.SourceB})
		}
	}

	var mu sync.Mutex
	for _, ref := range refs {
		lookup, index := s.sourceA, aByEmail
		if ref.presentIn == model.SourceA {
			lookup, index = s.sourceB, bByEmail
		}

		wg.Add(1)
		go func(email string, lookup sources.Lookup, index map[string]*model.Record) {
			defer wg.Done()
			record, err := lookup.FindByEmail(ctx, email)
			if err != nil {
				logger.Debug("Cross-reference lookup failed, treating as absent",
					log.String("email", email), log.Error(err))
				return
			}
			if record == nil {
				return
			}
			mu.Lock()
			index[record.Email] = record
			mu.Unlock()
		}(ref.email, lookup, index)
	}
	wg.Wait()

	unified := make([]model.UnifiedRecord, 0, len(emails))
	for _, email := range emails {
		a, b := aByEmail[email], bByEmail[email]
		merged, err := Merge(a, b)
		if err != nil {
			return nil, err
		}
		merged.Metadata.IsPartial = (a == nil) != (b == nil)
		unified = append(unified, *merged)
	}
	return unified, nil
}

// Sync compares both sources' views of an email. When only one side has a
// record the report short-circuits to single_source_only; when both are
// present the diff engine produces the field-level report.
func (s *ReconciliationService) Sync(ctx context.Context, email string) (*model.SyncResult, error) {
	normalized, err := model.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	a, b := s.findBoth(ctx, normalized)
	switch {
	case a == nil && b == nil:
		return nil, errors2.NewClientError(errors2.RECORD_NOT_FOUND, http.StatusNotFound)
	case b == nil:
		return singleSourceResult(a), nil
	case a == nil:
		return singleSourceResult(b), nil
	}

	result := Diff(*a, *b)
	return &result, nil
}

// findBoth issues the by-email lookup to both sources concurrently. A lookup
// error is logged and degraded to absent.
func (s *ReconciliationService) findBoth(ctx context.Context, email string) (*model.Record, *model.Record) {
	logger := log.GetLogger()
	var a, b *model.Record
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		record, err := s.sourceA.FindByEmail(ctx, email)
		if err != nil {
			logger.Debug("Source A lookup failed, treating as absent", log.Error(err))
			return
		}
		a = record
	}()
	go func() {
		defer wg.Done()
		record, err := s.sourceB.FindByEmail(ctx, email)
		if err != nil {
			logger.Debug("Source B lookup failed, treating as absent", log.Error(err))
			return
		}
		b = record
	}()
	wg.Wait()
	return a, b
}

func singleSourceResult(r *model.Record) *model.SyncResult {
	side := r.Source
	updated := r.LastUpdated

	timestamps := model.SyncTimestamps{}
	if side == model.SourceA {
		timestamps.SourceA = &updated
	} else {
		timestamps.SourceB = &updated
	}

	return &model.SyncResult{
		Email:         r.Email,
		Status:        model.SyncStatusSingleSourceOnly,
		PresentIn:     &side,
		LastUpdated:   timestamps,
		Conflicts:     []model.FieldConflictEntry{},
		MatchedFields: []string{},
	}
}
