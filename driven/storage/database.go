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

package storage

import (
	"context"
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	db       *mongo.Database
	dbClient *mongo.Client

	logger *logs.Logger

	members       *collectionWrapper
	invitations   *collectionWrapper
	permissions   *collectionWrapper
	moduleViews   *collectionWrapper
	projectGrants *collectionWrapper
	shareLinks    *collectionWrapper
	approvals     *collectionWrapper
	auditEvents   *collectionWrapper
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	members := &collectionWrapper{database: m, coll: db.Collection("members")}
	err = m.applyMembersChecks(members)
	if err != nil {
		return err
	}

	invitations := &collectionWrapper{database: m, coll: db.Collection("invitations")}
	err = m.applyInvitationsChecks(invitations)
	if err != nil {
		return err
	}

	permissions := &collectionWrapper{database: m, coll: db.Collection("permissions")}
	err = m.applyPermissionsChecks(permissions)
	if err != nil {
		return err
	}

	moduleViews := &collectionWrapper{database: m, coll: db.Collection("module_views")}
	err = m.applyModuleViewsChecks(moduleViews)
	if err != nil {
		return err
	}

	projectGrants := &collectionWrapper{database: m, coll: db.Collection("project_grants")}
	err = m.applyProjectGrantsChecks(projectGrants)
	if err != nil {
		return err
	}

	shareLinks := &collectionWrapper{database: m, coll: db.Collection("share_links")}
	err = m.applyShareLinksChecks(shareLinks)
	if err != nil {
		return err
	}

	approvals := &collectionWrapper{database: m, coll: db.Collection("approvals")}
	err = m.applyApprovalsChecks(approvals)
	if err != nil {
		return err
	}

	auditEvents := &collectionWrapper{database: m, coll: db.Collection("audit_events")}
	err = m.applyAuditEventsChecks(auditEvents)
	if err != nil {
		return err
	}

	//assign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.members = members
	m.invitations = invitations
	m.permissions = permissions
	m.moduleViews = moduleViews
	m.projectGrants = projectGrants
	m.shareLinks = shareLinks
	m.approvals = approvals
	m.auditEvents = auditEvents

	return nil
}

func (m *database) applyMembersChecks(members *collectionWrapper) error {
	m.logger.Info("apply members checks.....")

	//one membership per user per organization
	err := members.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "user_id", Value: 1}}, true)
	if err != nil {
		return err
	}
	//one membership per email per organization
	err = members.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "email", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("members checks passed")
	return nil
}

func (m *database) applyInvitationsChecks(invitations *collectionWrapper) error {
	m.logger.Info("apply invitations checks.....")

	err := invitations.AddIndex(bson.D{primitive.E{Key: "token_hash", Value: 1}}, true)
	if err != nil {
		return err
	}
	err = invitations.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "email", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("invitations checks passed")
	return nil
}

func (m *database) applyPermissionsChecks(permissions *collectionWrapper) error {
	m.logger.Info("apply permissions checks.....")

	//at most one override per capability key per member
	err := permissions.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "member_id", Value: 1},
		primitive.E{Key: "module", Value: 1}, primitive.E{Key: "action", Value: 1}, primitive.E{Key: "subview_key", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("permissions checks passed")
	return nil
}

func (m *database) applyModuleViewsChecks(moduleViews *collectionWrapper) error {
	m.logger.Info("apply module views checks.....")

	err := moduleViews.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "member_id", Value: 1},
		primitive.E{Key: "module", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("module views checks passed")
	return nil
}

func (m *database) applyProjectGrantsChecks(projectGrants *collectionWrapper) error {
	m.logger.Info("apply project grants checks.....")

	err := projectGrants.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "member_id", Value: 1},
		primitive.E{Key: "project_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("project grants checks passed")
	return nil
}

func (m *database) applyShareLinksChecks(shareLinks *collectionWrapper) error {
	m.logger.Info("apply share links checks.....")

	err := shareLinks.AddIndex(bson.D{primitive.E{Key: "token_hash", Value: 1}}, true)
	if err != nil {
		return err
	}
	err = shareLinks.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "resource_type", Value: 1},
		primitive.E{Key: "resource_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("share links checks passed")
	return nil
}

func (m *database) applyApprovalsChecks(approvals *collectionWrapper) error {
	m.logger.Info("apply approvals checks.....")

	err := approvals.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "resource_type", Value: 1},
		primitive.E{Key: "resource_id", Value: 1}, primitive.E{Key: "status", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("approvals checks passed")
	return nil
}

func (m *database) applyAuditEventsChecks(auditEvents *collectionWrapper) error {
	m.logger.Info("apply audit events checks.....")

	err := auditEvents.AddIndex(bson.D{primitive.E{Key: "org_id", Value: 1}, primitive.E{Key: "date_created", Value: -1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("audit events checks passed")
	return nil
}
