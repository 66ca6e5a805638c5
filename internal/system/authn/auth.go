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

package authn

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/record-reconciliation-service/internal/system/config"
	errors2 "github.com/wso2/record-reconciliation-service/internal/system/errors"
	"github.com/wso2/record-reconciliation-service/internal/system/log"
	"github.com/wso2/record-reconciliation-service/internal/system/utils"
)

// Middleware enforces bearer-token authentication on an API handler when
// auth is enabled in the deployment configuration.
func Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authConfig := config.GetRRSRuntime().Config.Auth
		if !authConfig.Enabled {
			next(w, r)
			return
		}

		token, err := extractBearerToken(r)
		if err != nil {
			utils.HandleError(w, unauthorizedError())
			return
		}
		if err := ValidateToken(token, authConfig); err != nil {
			log.GetLogger().Debug("Bearer token validation failed", log.Error(err))
			utils.HandleError(w, unauthorizedError())
			return
		}

		next(w, r)
	}
}

// ValidateToken verifies the token signature against the configured HMAC
// secret and checks audience and expiry.
func ValidateToken(tokenString string, authConfig config.AuthConfig) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(authConfig.JWTSecret), nil
	}, jwt.WithAudience(authConfig.Audience), jwt.WithExpirationRequired())
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("token is not valid")
	}
	return nil
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("authorization header is not a bearer token")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", fmt.Errorf("empty bearer token")
	}
	return token, nil
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized)
}
