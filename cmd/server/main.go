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

package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	sourcea "github.com/wso2/record-reconciliation-service/internal/sources/sourcea/store"
	sourceb "github.com/wso2/record-reconciliation-service/internal/sources/sourceb/store"
	"github.com/wso2/record-reconciliation-service/internal/system/config"
	"github.com/wso2/record-reconciliation-service/internal/system/constants"
	"github.com/wso2/record-reconciliation-service/internal/system/log"
	"github.com/wso2/record-reconciliation-service/internal/system/managers"
)

const configFile = "repository/conf/deployment.yaml"

func main() {
	rrsHome := getRRSHome()

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	// Load the configuration file.
	rrsConfig, err := config.LoadConfig(rrsHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeRRSRuntime(rrsHome, rrsConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	// Initialize logger.
	if err := log.Init(rrsConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	// Connect source A (PostgreSQL).
	db, err := openSourceA(rrsConfig.SourceA)
	if err != nil {
		logger.Fatal("Failed to connect to source A", log.Error(err))
	}
	defer db.Close()

	// Connect source B (MongoDB).
	mongoClient, err := openSourceB(rrsConfig.SourceB)
	if err != nil {
		logger.Fatal("Failed to connect to source B", log.Error(err))
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	customerStore := sourcea.NewCustomerStore(db)
	contactStore := sourceb.NewContactStore(
		mongoClient.Database(rrsConfig.SourceB.Database),
		rrsConfig.SourceB.Collection,
		time.Duration(rrsConfig.SourceB.CacheTTLSeconds)*time.Second,
	)

	serverAddr := fmt.Sprintf("%s:%d", rrsConfig.Addr.Host, rrsConfig.Addr.Port)
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, customerStore, contactStore)
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("addr", serverAddr), log.Error(err))
	}
	logger.Info("Record reconciliation service started", log.String("addr", serverAddr))

	server := &http.Server{Handler: enableCORS(mux)}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

func openSourceA(cfg config.SourceAConfig) (*sql.DB, error) {

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DbName, sslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

func openSourceB(cfg config.SourceBConfig) (*mongo.Client, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getRRSHome() string {

	projectHome := ""
	projectHomeFlag := flag.String("rrsHome", "", "Path to record reconciliation service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			stdlog.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}

	return projectHome
}
