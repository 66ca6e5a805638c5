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

package sources

import (
	"context"

	"github.com/wso2/record-reconciliation-service/internal/record/model"
)

// Lookup is the capability each customer-data source implements. The
// reconciliation layer is polymorphic over the two concrete adapters.
//
// Contract for implementers: a transport or storage failure must be
// translated into an absent record (or empty list) rather than surfaced as an
// error wherever possible. FindByEmail returns (nil, nil) when no record
// exists; SearchByName returns an empty slice, never nil semantics the caller
// must guard against. The reconciliation layer has no retry or
// circuit-breaking logic of its own and treats any returned error as absent.
type Lookup interface {
	FindByEmail(ctx context.Context, email string) (*model.Record, error)
	SearchByName(ctx context.Context, query string) ([]model.Record, error)
	IsHealthy(ctx context.Context) bool
}
