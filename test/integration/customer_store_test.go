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

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/record-reconciliation-service/internal/record/model"
	"github.com/wso2/record-reconciliation-service/internal/sources/sourcea/store"
)

func strPtr(s string) *string {
	return &s
}

func seedCustomers(t *testing.T, ctx context.Context) {
	t.Helper()
	require.NoError(t, testPostgres.Reset(ctx))

	updated := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, testPostgres.InsertCustomer(ctx,
		"anna@example.com", "Anna Schmidt", "Hauptstr. 1, Berlin",
		strPtr("2020-01-01"), strPtr("premium"), updated))
	require.NoError(t, testPostgres.InsertCustomer(ctx,
		"max@firma.de", "Max Mustermann", "Nebenstr. 2, Hamburg",
		nil, nil, updated.Add(time.Hour)))
	require.NoError(t, testPostgres.InsertCustomer(ctx,
		"erika@firma.de", "Erika Mustermann", "Nebenstr. 3, Hamburg",
		strPtr("2021-05-05"), strPtr("basic"), updated.Add(2*time.Hour)))
}

func TestCustomerStore_FindByEmail(t *testing.T) {
	ctx := context.Background()
	seedCustomers(t, ctx)
	customerStore := store.NewCustomerStore(testPostgres.DB)

	record, err := customerStore.FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "anna@example.com", record.Email)
	assert.Equal(t, "Anna Schmidt", record.Name)
	assert.Equal(t, "Hauptstr. 1, Berlin", record.Address)
	assert.Nil(t, record.Phone, "the relational source carries no phone numbers")
	require.NotNil(t, record.ContractStartDate)
	assert.Equal(t, "2020-01-01", *record.ContractStartDate)
	assert.Equal(t, model.SourceA, record.Source)
	assert.NotEmpty(t, record.ID)
}

func TestCustomerStore_FindByEmail_NullContractColumns(t *testing.T) {
	ctx := context.Background()
	seedCustomers(t, ctx)
	customerStore := store.NewCustomerStore(testPostgres.DB)

	record, err := customerStore.FindByEmail(ctx, "max@firma.de")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Nil(t, record.ContractStartDate)
	assert.Nil(t, record.ContractType)
}

func TestCustomerStore_FindByEmail_AbsentRow(t *testing.T) {
	ctx := context.Background()
	seedCustomers(t, ctx)
	customerStore := store.NewCustomerStore(testPostgres.DB)

	record, err := customerStore.FindByEmail(ctx, "ghost@x.de")
	require.NoError(t, err, "a missing row is absence, not an error")
	assert.Nil(t, record)
}

func TestCustomerStore_SearchByName_CaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	seedCustomers(t, ctx)
	customerStore := store.NewCustomerStore(testPostgres.DB)

	results, err := customerStore.SearchByName(ctx, "mustermann")
	require.NoError(t, err)
	require.Len(t, results, 2)

	emails := []string{results[0].Email, results[1].Email}
	assert.ElementsMatch(t, []string{"max@firma.de", "erika@firma.de"}, emails)
	// Ordered by freshness, newest first.
	assert.Equal(t, "erika@firma.de", results[0].Email)
}

func TestCustomerStore_SearchByName_NoMatches(t *testing.T) {
	ctx := context.Background()
	seedCustomers(t, ctx)
	customerStore := store.NewCustomerStore(testPostgres.DB)

	results, err := customerStore.SearchByName(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestCustomerStore_IsHealthy(t *testing.T) {
	customerStore := store.NewCustomerStore(testPostgres.DB)
	assert.True(t, customerStore.IsHealthy(context.Background()))
}
