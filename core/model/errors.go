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

package model

import (
	"errors"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

//Error kinds shared between the engine and its driver adapters. The engine
//tags every failed operation with one of these so the callers can map it
//onto a transport response instead of guessing from a generic failure.
const (
	//StatusNotFound member/resource/approval/share link absent
	StatusNotFound logutils.MessageDataStatus = "not-found"
	//StatusForbidden resolver or scope guard denial
	StatusForbidden logutils.MessageDataStatus = "forbidden"
	//StatusExpired share link past its expiry
	StatusExpired logutils.MessageDataStatus = "expired"
	//StatusRevoked share link revoked
	StatusRevoked logutils.MessageDataStatus = "revoked"
	//StatusConflict duplicate invitation, double decision, lost race
	StatusConflict logutils.MessageDataStatus = "conflict"
	//StatusInvalid unknown enum value, malformed identifier
	StatusInvalid logutils.MessageDataStatus = "invalid"
)

//KindError tags an engine failure with one of the shared error kinds.
//The kind is attached at the outermost return of a core API so drivers can
//read it with ErrorKind without unwrapping library error chains.
type KindError struct {
	Kind logutils.MessageDataStatus
	Err  error
}

func (e *KindError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

//Unwrap gives the wrapped error
func (e *KindError) Unwrap() error {
	return e.Err
}

//Kinded wraps err with the given kind
func Kinded(kind logutils.MessageDataStatus, err error) error {
	return &KindError{Kind: kind, Err: err}
}

//ErrorKind gives the kind of an engine error, or empty when err carries none
func ErrorKind(err error) logutils.MessageDataStatus {
	var kindErr *KindError
	if errors.As(err, &kindErr) {
		return kindErr.Kind
	}
	return ""
}
