/*
 * Copyright (c) 2026, InvestHub Ltd. (https://www.investhub.io).
 *
 * InvestHub Ltd. licenses this file to you under the Apache License,
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
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/investhub/cookie-consent-service/internal/system/config"
	"github.com/investhub/cookie-consent-service/internal/system/constants"
	"github.com/investhub/cookie-consent-service/internal/system/log"
	"github.com/investhub/cookie-consent-service/internal/system/managers"
)

const configFile = "repository/conf/deployment.yaml"

func main() {
	serviceHome := getServiceHome()

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	// Load the configuration file
	cfg, err := config.LoadConfig(serviceHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configuration.
	if err := config.InitializeRuntime(serviceHome, cfg); err != nil {
		stdlog.Fatalf("Failed to initialize runtime configuration: %v", err)
	}

	// Initialize logger
	if err := log.Init(cfg.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	mux := enableCORS(initMultiplexer(), cfg.Auth.CORSAllowedOrigins)

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", log.Error(err))
	}

	logger.Info("Cookie consent service started.", log.String("addr", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests.", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services.", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {
	origins := "*"
	if len(allowedOrigins) > 0 {
		origins = allowedOrigins[0]
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getServiceHome() string {

	// Parse project directory from command line arguments.
	serviceHome := ""
	serviceHomeFlag := flag.String("serviceHome", "", "Path to the consent service home directory")
	flag.Parse()

	if *serviceHomeFlag != "" {
		serviceHome = *serviceHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			stdlog.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		serviceHome = dir
	}

	return serviceHome
}
