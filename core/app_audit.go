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

package core

import (
	"time"

	"access-building-block/core/model"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//maxAuditLimit bounds the accepted audit query limit
	maxAuditLimit = 500
	//defaultAuditLimit applies when the caller gives no limit
	defaultAuditLimit = 100
)

//audit appends an event to the audit trail. Audit writes are a best-effort
//side channel - a failure is logged as a warning and never fails the
//primary mutation, but the gap stays observable in the service log.
func (app *application) audit(l *logs.Log, orgID string, actorMemberID string, actionType string,
	resourceType string, resourceID string, meta map[string]interface{}) {
	event := model.AuditEvent{ID: uuid.NewString(), OrgID: orgID, ActorMemberID: actorMemberID,
		ActionType: actionType, ResourceType: resourceType, ResourceID: resourceID, Meta: meta, DateCreated: time.Now().UTC()}

	err := app.storage.InsertAuditEvent(event)
	if err != nil {
		l.Warnf("lost audit event %s for %s %s: %v", actionType, resourceType, resourceID, err)
	}
}

func (app *application) admQueryAuditEvents(l *logs.Log, orgID string, filter model.AuditFilter) ([]model.AuditEvent, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditLimit
	}
	if filter.Limit > maxAuditLimit {
		filter.Limit = maxAuditLimit
	}

	events, err := app.storage.FindAuditEvents(orgID, filter)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAuditEvent, nil, err)
	}
	return events, nil
}
