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

	"access-building-block/core/model"
)

//statusForError maps an engine error kind onto an HTTP status code. Errors
//without a kind are treated as internal failures.
func statusForError(err error) int {
	switch model.ErrorKind(err) {
	case model.StatusNotFound:
		return http.StatusNotFound
	case model.StatusForbidden:
		return http.StatusForbidden
	case model.StatusConflict:
		return http.StatusConflict
	case model.StatusInvalid:
		return http.StatusBadRequest
	case model.StatusExpired, model.StatusRevoked:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

//showDetails says whether the error is safe to surface to the caller -
//internal failures stay opaque
func showDetails(err error) bool {
	return model.ErrorKind(err) != ""
}
