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

package constants

import "time"

const (
	// ApiBasePath is the base path for all reconciliation API endpoints.
	ApiBasePath = "/api/v1"

	// SourceQueryTimeout bounds a single lookup against a source backend.
	SourceQueryTimeout = 5 * time.Second

	// HealthProbeTimeout bounds a single liveness probe against a source backend.
	HealthProbeTimeout = 3 * time.Second

	// DefaultCacheTTL is used when no cache TTL is configured for source B.
	DefaultCacheTTL = 30 * time.Second
)
