// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strconv"

	"access-building-block/core"
	"access-building-block/driven/emailer"
	"access-building-block/driven/packcatalog"
	"access-building-block/driven/storage"
	"access-building-block/driver/web"

	"github.com/rokwire/core-auth-library-go/v3/envloader"
	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "access"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("ACCESS_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	env := envLoader.GetAndLogEnvVar("ACCESS_ENVIRONMENT", true, false) //local, dev, staging, prod
	port := envLoader.GetAndLogEnvVar("ACCESS_PORT", false, false)
	if port == "" {
		port = "80"
	}

	host := envLoader.GetAndLogEnvVar("ACCESS_HOST", true, false)

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("ACCESS_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("ACCESS_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("ACCESS_MONGO_TIMEOUT", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	// pack catalog adapter
	packCatalogPath := envLoader.GetAndLogEnvVar("ACCESS_PACK_CATALOG_PATH", false, false)
	if packCatalogPath == "" {
		packCatalogPath = "assets/permission_packs.yaml"
	}
	catalogAdapter, err := packcatalog.NewCatalogAdapter(packCatalogPath)
	if err != nil {
		logger.Fatalf("Cannot load the permission pack catalog: %v", err)
	}

	// emailer adapter
	smtpHost := envLoader.GetAndLogEnvVar("ACCESS_SMTP_HOST", false, false)
	smtpPort := envLoader.GetAndLogEnvVar("ACCESS_SMTP_PORT", false, false)
	smtpUser := envLoader.GetAndLogEnvVar("ACCESS_SMTP_USER", false, true)
	smtpPassword := envLoader.GetAndLogEnvVar("ACCESS_SMTP_PASSWORD", false, true)
	smtpFrom := envLoader.GetAndLogEnvVar("ACCESS_SMTP_EMAIL_FROM", false, false)
	smtpPortNum, _ := strconv.Atoi(smtpPort)
	emailerAdapter := emailer.NewEmailerAdapter(smtpHost, smtpPortNum, smtpUser, smtpPassword, smtpFrom)

	// core
	coreAPIs := core.NewCoreAPIs(env, Version, Build, host, storageAdapter, catalogAdapter, emailerAdapter, logger)
	coreAPIs.Start()

	// web adapter
	tokenSecret := envLoader.GetAndLogEnvVar("ACCESS_TOKEN_SECRET", true, true)
	webAdapter := web.NewWebAdapter(env, port, coreAPIs, host, tokenSecret, logger)
	webAdapter.Start()
}
