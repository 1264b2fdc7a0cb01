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

package web

import (
	"fmt"
	"net/http"

	"access-building-block/core"
	"access-building-block/utils"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	httpSwagger "github.com/swaggo/http-swagger"
)

//Adapter entity
type Adapter struct {
	env  string
	host string
	port string

	auth   *Auth
	logger *logs.Logger

	servicesApisHandler ServicesApisHandler
	adminApisHandler    AdminApisHandler

	coreAPIs *core.APIs
}

type handlerFunc = func(*logs.Log, *http.Request, *TokenClaims) logs.HTTPResponse

//Start starts the module
func (we Adapter) Start() {
	err := we.auth.Start()
	if err != nil {
		we.logger.Fatalf("error starting auth - %v", err)
	}

	router := mux.NewRouter().StrictSlash(true)

	subRouter := router.PathPrefix("/access").Subrouter()
	subRouter.PathPrefix("/doc/ui").Handler(we.serveDocUI())
	subRouter.HandleFunc("/doc", we.serveDoc)
	subRouter.HandleFunc("/version", we.wrapFunc(we.getVersion, nil)).Methods("GET")

	///services ///
	servicesSubRouter := subRouter.PathPrefix("/services").Subrouter()
	servicesSubRouter.HandleFunc("/member", we.wrapFunc(we.servicesApisHandler.getMember, we.auth.servicesAuth)).Methods("GET")

	servicesSubRouter.HandleFunc("/permissions/resolve", we.wrapFunc(we.servicesApisHandler.resolvePermission, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/permissions/matrix", we.wrapFunc(we.servicesApisHandler.getEffectiveMatrix, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/access/check", we.wrapFunc(we.servicesApisHandler.checkAccess, we.auth.servicesAuth)).Methods("POST")

	servicesSubRouter.HandleFunc("/module-views", we.wrapFunc(we.servicesApisHandler.getModuleViews, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/module-views/{module}", we.wrapFunc(we.servicesApisHandler.updateModuleView, we.auth.servicesAuth)).Methods("PUT")

	servicesSubRouter.HandleFunc("/share-links/validate", we.wrapFunc(we.servicesApisHandler.validateShareToken, nil)).Methods("POST")

	servicesSubRouter.HandleFunc("/approvals", we.wrapFunc(we.servicesApisHandler.requestApproval, we.auth.servicesAuth)).Methods("POST")
	servicesSubRouter.HandleFunc("/approvals", we.wrapFunc(we.servicesApisHandler.listApprovals, we.auth.servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/approvals/{id}/decision", we.wrapFunc(we.servicesApisHandler.decideApproval, we.auth.servicesAuth)).Methods("PUT")

	servicesSubRouter.HandleFunc("/invitations/accept", we.wrapFunc(we.servicesApisHandler.acceptInvitation, we.auth.servicesAuth)).Methods("POST")
	///

	//webhooks - called by the email provider, not by signed-in members
	subRouter.HandleFunc("/webhooks/email-delivery", we.wrapFunc(we.servicesApisHandler.processDeliveryFeedback, nil)).Methods("POST")

	///admin ///
	adminSubRouter := subRouter.PathPrefix("/admin").Subrouter()
	adminSubRouter.HandleFunc("/members", we.wrapFunc(we.adminApisHandler.getMembers, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/members/{id}", we.wrapFunc(we.adminApisHandler.getMember, we.auth.adminAuth)).Methods("GET")

	adminSubRouter.HandleFunc("/members/{id}/permission-pack", we.wrapFunc(we.adminApisHandler.applyPermissionPack, we.auth.adminAuth)).Methods("PUT")
	adminSubRouter.HandleFunc("/members/{id}/permissions", we.wrapFunc(we.adminApisHandler.bulkUpdatePermissions, we.auth.adminAuth)).Methods("PUT")
	adminSubRouter.HandleFunc("/members/{id}/permissions", we.wrapFunc(we.adminApisHandler.getPermissions, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/permission-packs", we.wrapFunc(we.adminApisHandler.getPermissionPacks, we.auth.adminAuth)).Methods("GET")

	adminSubRouter.HandleFunc("/members/{id}/project-access", we.wrapFunc(we.adminApisHandler.grantProjectAccess, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/members/{id}/project-access", we.wrapFunc(we.adminApisHandler.listProjectAccess, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/members/{id}/project-access/{project-id}", we.wrapFunc(we.adminApisHandler.revokeProjectAccess, we.auth.adminAuth)).Methods("DELETE")

	adminSubRouter.HandleFunc("/share-links", we.wrapFunc(we.adminApisHandler.createShareLink, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/share-links", we.wrapFunc(we.adminApisHandler.listShareLinks, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/share-links/{id}", we.wrapFunc(we.adminApisHandler.revokeShareLink, we.auth.adminAuth)).Methods("DELETE")

	adminSubRouter.HandleFunc("/invitations", we.wrapFunc(we.adminApisHandler.createInvitation, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/invitations", we.wrapFunc(we.adminApisHandler.listInvitations, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/invitations/{id}", we.wrapFunc(we.adminApisHandler.revokeInvitation, we.auth.adminAuth)).Methods("DELETE")

	adminSubRouter.HandleFunc("/audit-events", we.wrapFunc(we.adminApisHandler.queryAuditEvents, we.auth.adminAuth)).Methods("GET")
	///

	we.logger.Fatalf("error serving: %v", http.ListenAndServe(":"+we.port, router))
}

func (we Adapter) getVersion(l *logs.Log, r *http.Request, claims *TokenClaims) logs.HTTPResponse {
	return l.HTTPResponseSuccessMessage(we.coreAPIs.GetVersion())
}

func (we Adapter) serveDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("access-control-allow-origin", "*")
	http.ServeFile(w, r, "./docs/swagger.yaml")
}

func (we Adapter) serveDocUI() http.Handler {
	url := fmt.Sprintf("%s/access/doc", we.host)
	return httpSwagger.Handler(httpSwagger.URL(url))
}

func (we Adapter) wrapFunc(handler handlerFunc, authorization Authorization) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		utils.LogRequest(req)

		logObj := we.logger.NewRequestLog(req)
		logObj.RequestReceived()

		var response logs.HTTPResponse
		if authorization != nil {
			responseStatus, claims, err := authorization.check(req)
			if err != nil {
				response = logObj.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequest, nil, err, responseStatus, true)
			} else {
				response = handler(logObj, req, claims)
			}
		} else {
			response = handler(logObj, req, &TokenClaims{})
		}

		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
	}
}

//NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(env string, port string, coreAPIs *core.APIs, host string, tokenSecret string, logger *logs.Logger) Adapter {
	auth, err := NewAuth(tokenSecret, logger)
	if err != nil {
		logger.Fatalf("error creating auth - %v", err)
	}

	servicesApisHandler := NewServicesApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)
	return Adapter{env: env, host: host, port: port, auth: auth, logger: logger,
		servicesApisHandler: servicesApisHandler, adminApisHandler: adminApisHandler, coreAPIs: coreAPIs}
}
