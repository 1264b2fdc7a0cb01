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
	"strconv"
	"time"

	"access-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//TransactionContext carries a Mongo session through the operations of one
//transaction
type TransactionContext interface {
	mongo.SessionContext
}

//Adapter implements the Storage interface
type Adapter struct {
	db *database

	logger *logs.Logger
}

//Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}
	return nil
}

//PerformTransaction performs a transaction
func (sa *Adapter) PerformTransaction(transaction func(context TransactionContext) error) error {
	err := sa.db.dbClient.UseSession(context.Background(), func(sessionContext mongo.SessionContext) error {
		err := sessionContext.StartTransaction()
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction("starting", "transaction", nil, err)
		}

		err = transaction(sessionContext)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return err
		}

		err = sessionContext.CommitTransaction(sessionContext)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction("committing", "transaction", nil, err)
		}
		return nil
	})
	return err
}

func (sa *Adapter) abortTransaction(sessionContext mongo.SessionContext) {
	err := sessionContext.AbortTransaction(sessionContext)
	if err != nil {
		sa.logger.Errorf("error aborting a transaction - %s", err)
	}
}

//Members

//FindMemberByID finds a member by id within an organization
func (sa *Adapter) FindMemberByID(orgID string, memberID string) (*model.Member, error) {
	return sa.findMember(bson.M{"_id": memberID, "org_id": orgID})
}

//FindMemberByUser finds the member of an organization for a user
func (sa *Adapter) FindMemberByUser(orgID string, userID string) (*model.Member, error) {
	return sa.findMember(bson.M{"org_id": orgID, "user_id": userID})
}

//FindMemberByEmail finds the member of an organization by email
func (sa *Adapter) FindMemberByEmail(orgID string, email string) (*model.Member, error) {
	return sa.findMember(bson.M{"org_id": orgID, "email": email})
}

func (sa *Adapter) findMember(filter bson.M) (*model.Member, error) {
	var result member
	err := sa.db.members.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	return memberFromStorage(&result), nil
}

//FindMembers finds all members of an organization
func (sa *Adapter) FindMembers(orgID string) ([]model.Member, error) {
	var result []member
	err := sa.db.members.Find(bson.M{"org_id": orgID}, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	return membersFromStorage(result), nil
}

//InsertMember inserts a member
func (sa *Adapter) InsertMember(context TransactionContext, item model.Member) error {
	_, err := sa.db.members.InsertOneWithContext(context, memberToStorage(&item))
	if err != nil {
		//one member per user per organization - the unique index speaks here
		if mongo.IsDuplicateKeyError(err) {
			return model.Kinded(model.StatusConflict, errors.WrapErrorAction(logutils.ActionInsert, model.TypeMember,
				&logutils.FieldArgs{"org_id": item.OrgID, "user_id": item.UserID}, err))
		}
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeMember, nil, err)
	}
	return nil
}

//UpdateMemberPack records the currently applied pack on the member
func (sa *Adapter) UpdateMemberPack(context TransactionContext, orgID string, memberID string, packID string) error {
	filter := bson.M{"_id": memberID, "org_id": orgID}
	update := bson.M{"$set": bson.M{"pack_id": packID, "date_updated": time.Now().UTC()}}
	res, err := sa.db.members.UpdateOneWithContext(context, filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeMember, &logutils.FieldArgs{"id": memberID}, err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID})
	}
	return nil
}

//Permissions

//FindPermissions finds the explicit permission overrides of a member
func (sa *Adapter) FindPermissions(orgID string, memberID string) ([]model.Permission, error) {
	var result []permission
	err := sa.db.permissions.Find(bson.M{"org_id": orgID, "member_id": memberID}, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypePermission, nil, err)
	}
	return permissionsFromStorage(result), nil
}

//DeletePermissions deletes all permission overrides of a member
func (sa *Adapter) DeletePermissions(context TransactionContext, orgID string, memberID string) error {
	_, err := sa.db.permissions.DeleteManyWithContext(context, bson.M{"org_id": orgID, "member_id": memberID}, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypePermission, nil, err)
	}
	return nil
}

//InsertPermissions inserts permission override rows
func (sa *Adapter) InsertPermissions(context TransactionContext, items []model.Permission) error {
	documents := make([]interface{}, len(items))
	for i := range items {
		documents[i] = permissionToStorage(&items[i])
	}
	_, err := sa.db.permissions.InsertManyWithContext(context, documents, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypePermission, nil, err)
	}
	return nil
}

//SavePermission upserts a permission override on its capability key
func (sa *Adapter) SavePermission(context TransactionContext, item model.Permission) error {
	filter, update := permissionUpsert(item)
	opts := options.Update().SetUpsert(true)
	_, err := sa.db.permissions.UpdateOneWithContext(context, filter, update, opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypePermission, nil, err)
	}
	return nil
}

//permissionUpsert builds the capability-key filter and the update document
//for saving an override. The _id of an existing row must stay untouched, so
//identity fields go under $setOnInsert only.
func permissionUpsert(item model.Permission) (bson.M, bson.M) {
	filter := bson.M{"org_id": item.OrgID, "member_id": item.MemberID,
		"module": string(item.Module), "action": string(item.Action), "subview_key": item.SubviewKey}
	update := bson.M{
		"$set":         bson.M{"allowed": item.Allowed, "scope": string(item.Scope), "date_updated": time.Now().UTC()},
		"$setOnInsert": bson.M{"_id": item.ID, "date_created": item.DateCreated},
	}
	return filter, update
}

//Module views

//FindModuleViews finds the stored module views of a member
func (sa *Adapter) FindModuleViews(orgID string, memberID string) ([]model.ModuleView, error) {
	var result []moduleView
	err := sa.db.moduleViews.Find(bson.M{"org_id": orgID, "member_id": memberID}, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeModuleView, nil, err)
	}
	return moduleViewsFromStorage(result), nil
}

//DeleteModuleViews deletes all module views of a member
func (sa *Adapter) DeleteModuleViews(context TransactionContext, orgID string, memberID string) error {
	_, err := sa.db.moduleViews.DeleteManyWithContext(context, bson.M{"org_id": orgID, "member_id": memberID}, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeModuleView, nil, err)
	}
	return nil
}

//InsertModuleViews inserts module view rows
func (sa *Adapter) InsertModuleViews(context TransactionContext, items []model.ModuleView) error {
	documents := make([]interface{}, len(items))
	for i := range items {
		documents[i] = moduleViewToStorage(&items[i])
	}
	_, err := sa.db.moduleViews.InsertManyWithContext(context, documents, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeModuleView, nil, err)
	}
	return nil
}

//SaveModuleView upserts a module view on (org, member, module)
func (sa *Adapter) SaveModuleView(item model.ModuleView) error {
	filter, update := moduleViewUpsert(item)
	opts := options.Update().SetUpsert(true)
	_, err := sa.db.moduleViews.UpdateOne(filter, update, opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeModuleView, nil, err)
	}
	return nil
}

func moduleViewUpsert(item model.ModuleView) (bson.M, bson.M) {
	filter := bson.M{"org_id": item.OrgID, "member_id": item.MemberID, "module": string(item.Module)}
	update := bson.M{
		"$set":         bson.M{"subviews_enabled": item.SubviewsEnabled, "layout": item.Layout, "date_updated": time.Now().UTC()},
		"$setOnInsert": bson.M{"_id": item.ID, "date_created": item.DateCreated},
	}
	return filter, update
}

//Project access grants

//FindProjectAccessGrant finds the grant of a member for a project
func (sa *Adapter) FindProjectAccessGrant(orgID string, memberID string, projectID string) (*model.ProjectAccessGrant, error) {
	var result projectGrant
	filter := bson.M{"org_id": orgID, "member_id": memberID, "project_id": projectID}
	err := sa.db.projectGrants.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeProjectAccessGrant, nil, err)
	}
	return projectGrantFromStorage(&result), nil
}

//FindProjectAccessGrants finds all grants of a member
func (sa *Adapter) FindProjectAccessGrants(orgID string, memberID string) ([]model.ProjectAccessGrant, error) {
	var result []projectGrant
	err := sa.db.projectGrants.Find(bson.M{"org_id": orgID, "member_id": memberID}, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeProjectAccessGrant, nil, err)
	}
	return projectGrantsFromStorage(result), nil
}

//SaveProjectAccessGrant upserts a grant on (org, member, project)
func (sa *Adapter) SaveProjectAccessGrant(item model.ProjectAccessGrant) error {
	filter, update := projectGrantUpsert(item)
	opts := options.Update().SetUpsert(true)
	_, err := sa.db.projectGrants.UpdateOne(filter, update, opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeProjectAccessGrant, nil, err)
	}
	return nil
}

func projectGrantUpsert(item model.ProjectAccessGrant) (bson.M, bson.M) {
	filter := bson.M{"org_id": item.OrgID, "member_id": item.MemberID, "project_id": item.ProjectID}
	update := bson.M{
		"$set":         bson.M{"access_level": string(item.AccessLevel), "date_updated": time.Now().UTC()},
		"$setOnInsert": bson.M{"_id": item.ID, "date_created": item.DateCreated},
	}
	return filter, update
}

//DeleteProjectAccessGrant deletes a grant. Returns false when no grant existed.
func (sa *Adapter) DeleteProjectAccessGrant(orgID string, memberID string, projectID string) (bool, error) {
	filter := bson.M{"org_id": orgID, "member_id": memberID, "project_id": projectID}
	res, err := sa.db.projectGrants.DeleteOne(filter, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionDelete, model.TypeProjectAccessGrant, nil, err)
	}
	return res.DeletedCount > 0, nil
}

//Share links

//InsertShareLink inserts a share link
func (sa *Adapter) InsertShareLink(item model.ShareLink) error {
	_, err := sa.db.shareLinks.InsertOne(shareLinkToStorage(&item))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeShareLink, nil, err)
	}
	return nil
}

//FindShareLinkByID finds a share link by id within an organization
func (sa *Adapter) FindShareLinkByID(orgID string, id string) (*model.ShareLink, error) {
	return sa.findShareLink(bson.M{"_id": id, "org_id": orgID})
}

//FindShareLinkByTokenHash finds a share link by its token hash
func (sa *Adapter) FindShareLinkByTokenHash(tokenHash string) (*model.ShareLink, error) {
	return sa.findShareLink(bson.M{"token_hash": tokenHash})
}

func (sa *Adapter) findShareLink(filter bson.M) (*model.ShareLink, error) {
	var result shareLink
	err := sa.db.shareLinks.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeShareLink, nil, err)
	}
	return shareLinkFromStorage(&result), nil
}

//FindShareLinks finds the share links of an organization, optionally narrowed
//to a resource
func (sa *Adapter) FindShareLinks(orgID string, resourceType *string, resourceID *string) ([]model.ShareLink, error) {
	filter := bson.M{"org_id": orgID}
	if resourceType != nil {
		filter["resource_type"] = *resourceType
	}
	if resourceID != nil {
		filter["resource_id"] = *resourceID
	}

	var result []shareLink
	err := sa.db.shareLinks.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeShareLink, nil, err)
	}
	return shareLinksFromStorage(result), nil
}

//RecordShareLinkAccess bumps the access counter and the last accessed instant
//in one atomic update - concurrent validations never lose counts
func (sa *Adapter) RecordShareLinkAccess(id string, accessedAt time.Time) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$inc": bson.M{"access_count": 1},
		"$set": bson.M{"last_accessed_at": accessedAt},
	}
	res, err := sa.db.shareLinks.UpdateOne(filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeShareLink, &logutils.FieldArgs{"id": id}, err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeShareLink, &logutils.FieldArgs{"id": id})
	}
	return nil
}

//RevokeShareLink sets the revocation instant unless already set. Returns
//false when another revocation got there first.
func (sa *Adapter) RevokeShareLink(id string, revokedAt time.Time) (bool, error) {
	filter := bson.M{"_id": id, "revoked_at": nil}
	update := bson.M{"$set": bson.M{"revoked_at": revokedAt}}
	res, err := sa.db.shareLinks.UpdateOne(filter, update, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeShareLink, &logutils.FieldArgs{"id": id}, err)
	}
	return res.ModifiedCount > 0, nil
}

//Approvals

//InsertApproval inserts an approval
func (sa *Adapter) InsertApproval(item model.Approval) error {
	_, err := sa.db.approvals.InsertOne(approvalToStorage(&item))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeApproval, nil, err)
	}
	return nil
}

//FindApprovalByID finds an approval by id within an organization
func (sa *Adapter) FindApprovalByID(orgID string, id string) (*model.Approval, error) {
	var result approval
	err := sa.db.approvals.FindOne(bson.M{"_id": id, "org_id": orgID}, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeApproval, nil, err)
	}
	return approvalFromStorage(&result), nil
}

//FindOpenApproval finds the requested approval for a resource, if any
func (sa *Adapter) FindOpenApproval(orgID string, resourceType string, resourceID string) (*model.Approval, error) {
	filter := bson.M{"org_id": orgID, "resource_type": resourceType, "resource_id": resourceID,
		"status": string(model.ApprovalStatusRequested)}
	var result approval
	err := sa.db.approvals.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeApproval, nil, err)
	}
	return approvalFromStorage(&result), nil
}

//FindApprovals finds the approvals of an organization matching the filter
func (sa *Adapter) FindApprovals(orgID string, filter model.ApprovalsFilter) ([]model.Approval, error) {
	mongoFilter := bson.M{"org_id": orgID}
	if filter.ResourceType != nil {
		mongoFilter["resource_type"] = *filter.ResourceType
	}
	if filter.ProjectID != nil {
		mongoFilter["project_id"] = *filter.ProjectID
	}
	if filter.Status != nil {
		mongoFilter["status"] = string(*filter.Status)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date_created", Value: -1}})
	if filter.Limit > 0 {
		findOptions.SetLimit(int64(filter.Limit))
	}

	var result []approval
	err := sa.db.approvals.Find(mongoFilter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeApproval, nil, err)
	}
	return approvalsFromStorage(result), nil
}

//DecideApproval swaps a requested approval to its decision. The swap is
//conditional on the current status, so of two racing decisions exactly one
//observes true.
func (sa *Adapter) DecideApproval(orgID string, id string, decision model.ApprovalStatus, decidedBy string, comment string, decidedAt time.Time) (bool, error) {
	filter := bson.M{"_id": id, "org_id": orgID, "status": string(model.ApprovalStatusRequested)}
	update := bson.M{"$set": bson.M{"status": string(decision), "decided_by": decidedBy,
		"decision_comment": comment, "date_decided": decidedAt}}
	res, err := sa.db.approvals.UpdateOne(filter, update, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeApproval, &logutils.FieldArgs{"id": id}, err)
	}
	return res.ModifiedCount > 0, nil
}

//Invitations

//InsertInvitation inserts an invitation
func (sa *Adapter) InsertInvitation(item model.Invitation) error {
	_, err := sa.db.invitations.InsertOne(invitationToStorage(&item))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeInvitation, nil, err)
	}
	return nil
}

//FindInvitationByID finds an invitation by id within an organization
func (sa *Adapter) FindInvitationByID(orgID string, id string) (*model.Invitation, error) {
	return sa.findInvitation(bson.M{"_id": id, "org_id": orgID})
}

//FindInvitationByTokenHash finds an invitation by its token hash
func (sa *Adapter) FindInvitationByTokenHash(tokenHash string) (*model.Invitation, error) {
	return sa.findInvitation(bson.M{"token_hash": tokenHash})
}

//FindPendingInvitation finds the pending invitation for an email, if any
func (sa *Adapter) FindPendingInvitation(orgID string, email string) (*model.Invitation, error) {
	return sa.findInvitation(bson.M{"org_id": orgID, "email": email, "status": string(model.InvitationStatusPending)})
}

func (sa *Adapter) findInvitation(filter bson.M) (*model.Invitation, error) {
	var result invitation
	err := sa.db.invitations.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeInvitation, nil, err)
	}
	return invitationFromStorage(&result), nil
}

//FindInvitations finds all invitations of an organization
func (sa *Adapter) FindInvitations(orgID string) ([]model.Invitation, error) {
	var result []invitation
	findOptions := options.Find().SetSort(bson.D{{Key: "date_created", Value: -1}})
	err := sa.db.invitations.Find(bson.M{"org_id": orgID}, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeInvitation, nil, err)
	}
	return invitationsFromStorage(result), nil
}

//UpdateInvitationStatus swaps the invitation status conditionally on its
//current value. Returns false when the invitation is no longer in the
//expected status.
func (sa *Adapter) UpdateInvitationStatus(context TransactionContext, id string, from model.InvitationStatus, to model.InvitationStatus, updatedAt time.Time) (bool, error) {
	filter := bson.M{"_id": id, "status": string(from)}
	update := bson.M{"$set": bson.M{"status": string(to), "date_updated": updatedAt}}
	res, err := sa.db.invitations.UpdateOneWithContext(context, filter, update, nil)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeInvitation, &logutils.FieldArgs{"id": id}, err)
	}
	return res.ModifiedCount > 0, nil
}

//SetInvitationEmailBounced flips the bounce flag on the pending invitations
//for an email address. Returns the number of updated invitations.
func (sa *Adapter) SetInvitationEmailBounced(email string, bounced bool) (int64, error) {
	filter := bson.M{"email": email, "status": string(model.InvitationStatusPending)}
	update := bson.M{"$set": bson.M{"email_bounced": bounced, "date_updated": time.Now().UTC()}}
	res, err := sa.db.invitations.UpdateMany(filter, update, nil)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeInvitation, &logutils.FieldArgs{"email": email}, err)
	}
	return res.ModifiedCount, nil
}

//Audit events

//InsertAuditEvent appends an event to the audit trail
func (sa *Adapter) InsertAuditEvent(item model.AuditEvent) error {
	_, err := sa.db.auditEvents.InsertOne(auditEventToStorage(&item))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeAuditEvent, nil, err)
	}
	return nil
}

//FindAuditEvents finds audit events matching the filter, newest first
func (sa *Adapter) FindAuditEvents(orgID string, filter model.AuditFilter) ([]model.AuditEvent, error) {
	mongoFilter := bson.M{"org_id": orgID}
	if filter.ActionType != nil {
		mongoFilter["action_type"] = *filter.ActionType
	}
	if filter.ResourceType != nil {
		mongoFilter["resource_type"] = *filter.ResourceType
	}
	if filter.Since != nil {
		mongoFilter["date_created"] = bson.M{"$gte": *filter.Since}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date_created", Value: -1}})
	if filter.Limit > 0 {
		findOptions.SetLimit(int64(filter.Limit))
	}

	var result []auditEvent
	err := sa.db.auditEvents.Find(mongoFilter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAuditEvent, nil, err)
	}
	return auditEventsFromStorage(result), nil
}

//NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default Mongo timeout - 500")
		timeoutInt = 500
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout, logger: logger}
	return &Adapter{db: db, logger: logger}
}
