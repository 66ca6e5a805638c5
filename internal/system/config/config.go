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

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	Enabled   bool   `yaml:"enabled"`
	JWTSecret string `yaml:"jwt_secret"`
	Audience  string `yaml:"audience"`
}

// SourceAConfig holds the connection settings for the contract system of
// record (PostgreSQL).
type SourceAConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DbName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// SourceBConfig holds the connection settings for the contact store (MongoDB).
type SourceBConfig struct {
	URI             string `yaml:"uri"`
	Database        string `yaml:"database"`
	Collection      string `yaml:"collection"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

type Config struct {
	Addr    AddrConfig    `yaml:"addr"`
	Log     LogConfig     `yaml:"log"`
	Auth    AuthConfig    `yaml:"auth"`
	SourceA SourceAConfig `yaml:"source_a"`
	SourceB SourceBConfig `yaml:"source_b"`
}
