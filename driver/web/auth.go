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
	"net/http"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	typeCheckServicesAuthRequestToken logutils.MessageActionType = "checking services auth"
	typeCheckAdminAuthRequestToken    logutils.MessageActionType = "checking admin auth"
	typeCheckAdminAuthorization       logutils.MessageActionType = "checking admin authorization"
)

//TokenClaims are the claims the gateway issues for a signed-in member
type TokenClaims struct {
	OrgID    string `json:"org_id"`
	UserID   string `json:"user_id"`
	MemberID string `json:"member_id"`
	Admin    bool   `json:"admin"`

	jwt.RegisteredClaims
}

//Authorization is an interface for auth types
type Authorization interface {
	check(req *http.Request) (int, *TokenClaims, error)
}

//Auth handler
type Auth struct {
	servicesAuth *ServicesAuth
	adminAuth    *AdminAuth

	logger *logs.Logger
}

//Start starts the auth module
func (auth *Auth) Start() error {
	auth.logger.Info("Auth -> start")

	auth.servicesAuth.start()
	auth.adminAuth.start()

	return nil
}

//NewAuth creates new auth handler
func NewAuth(tokenSecret string, logger *logs.Logger) (*Auth, error) {
	servicesAuth := newServicesAuth(tokenSecret, logger)

	adminAuth, err := newAdminAuth(*servicesAuth, logger)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInitialize, "auth handler", nil, err)
	}

	auth := Auth{servicesAuth: servicesAuth, adminAuth: adminAuth, logger: logger}
	return &auth, nil
}

//ServicesAuth verifies the bearer token of a signed-in member
type ServicesAuth struct {
	tokenSecret []byte
	logger      *logs.Logger
}

func (auth *ServicesAuth) start() {
	auth.logger.Info("ServicesAuth -> start")
}

func (auth *ServicesAuth) check(req *http.Request) (int, *TokenClaims, error) {
	claims, err := auth.parseToken(req)
	if err != nil {
		return http.StatusUnauthorized, nil, errors.WrapErrorAction(typeCheckServicesAuthRequestToken, logutils.TypeToken, nil, err)
	}
	return http.StatusOK, claims, nil
}

func (auth *ServicesAuth) parseToken(req *http.Request) (*TokenClaims, error) {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, "auth header", logutils.StringArgs("Authorization"))
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, errors.ErrorData(logutils.StatusInvalid, "auth header", logutils.StringArgs("Authorization"))
	}

	var claims TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrorData(logutils.StatusInvalid, "signing method", logutils.StringArgs(token.Method.Alg()))
		}
		return auth.tokenSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, logutils.TypeToken, nil, err)
	}
	//a freshly invited user authenticates before becoming a member, so only
	//the user identity is mandatory here
	if claims.UserID == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, logutils.TypeClaim, logutils.StringArgs("user_id"))
	}
	return &claims, nil
}

func newServicesAuth(tokenSecret string, logger *logs.Logger) *ServicesAuth {
	return &ServicesAuth{tokenSecret: []byte(tokenSecret), logger: logger}
}

//AdminAuth verifies the bearer token and enforces the admin route policy
type AdminAuth struct {
	servicesAuth  ServicesAuth
	authorization *casbin.Enforcer
	logger        *logs.Logger
}

func (auth *AdminAuth) start() {
	auth.logger.Info("AdminAuth -> start")
}

func (auth *AdminAuth) check(req *http.Request) (int, *TokenClaims, error) {
	claims, err := auth.servicesAuth.parseToken(req)
	if err != nil {
		return http.StatusUnauthorized, nil, errors.WrapErrorAction(typeCheckAdminAuthRequestToken, logutils.TypeToken, nil, err)
	}
	if claims.OrgID == "" || claims.MemberID == "" {
		return http.StatusForbidden, nil, errors.ErrorData(logutils.StatusMissing, logutils.TypeClaim, logutils.StringArgs("org_id, member_id"))
	}
	if !claims.Admin {
		return http.StatusForbidden, nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeClaim, logutils.StringArgs("admin"))
	}

	allowed, err := auth.authorization.Enforce("admin", req.URL.Path, req.Method)
	if err != nil {
		return http.StatusInternalServerError, nil, errors.WrapErrorAction(typeCheckAdminAuthorization, logutils.TypeRequest, nil, err)
	}
	if !allowed {
		return http.StatusForbidden, nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeRequest,
			&logutils.FieldArgs{"path": req.URL.Path, "method": req.Method})
	}

	return http.StatusOK, claims, nil
}

func newAdminAuth(servicesAuth ServicesAuth, logger *logs.Logger) (*AdminAuth, error) {
	authorization, err := casbin.NewEnforcer("driver/web/authorization_model.conf", "driver/web/authorization_policy.csv")
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInitialize, "admin authorization", nil, err)
	}

	return &AdminAuth{servicesAuth: servicesAuth, authorization: authorization, logger: logger}, nil
}
