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
	"fmt"
	"time"

	"access-building-block/core/model"
	"access-building-block/driven/storage"
	"access-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//invitationExpiryDays is the validity window of an invitation token
	invitationExpiryDays = 7
)

func (app *application) admGetMembers(l *logs.Log, orgID string) ([]model.Member, error) {
	members, err := app.storage.FindMembers(orgID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	return members, nil
}

func (app *application) admGetMember(l *logs.Log, orgID string, memberID string) (*model.Member, error) {
	member, err := app.storage.FindMemberByID(orgID, memberID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if member == nil {
		return nil, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeMember, &logutils.FieldArgs{"id": memberID}))
	}
	return member, nil
}

//admCreateInvitation creates a pending invitation and dispatches the email
//after the invitation is committed. Email dispatch is best-effort and never
//unwinds the invitation.
func (app *application) admCreateInvitation(l *logs.Log, orgID string, actorMemberID string, email string, role model.Role) (*model.Invitation, error) {
	if email == "" {
		return nil, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusMissing, model.TypeInvitation, nil))
	}
	if !role.Valid() {
		return nil, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusInvalid, model.TypeRole, &logutils.FieldArgs{"role": role}))
	}

	existing, err := app.storage.FindMemberByEmail(orgID, email)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMember, nil, err)
	}
	if existing != nil {
		return nil, model.Kinded(model.StatusConflict, errors.ErrorData("already a member", model.TypeInvitation, &logutils.FieldArgs{"email": email}))
	}

	pending, err := app.storage.FindPendingInvitation(orgID, email)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeInvitation, nil, err)
	}
	if pending != nil {
		return nil, model.Kinded(model.StatusConflict, errors.ErrorData("already invited", model.TypeInvitation, &logutils.FieldArgs{"email": email}))
	}

	token, err := utils.GenerateAccessToken()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCreate, model.TypeInvitation, nil, err)
	}

	now := time.Now().UTC()
	invitation := model.Invitation{ID: uuid.NewString(), OrgID: orgID, Email: email, Role: role,
		Status: model.InvitationStatusPending, TokenHash: utils.HashToken(token), InvitedBy: actorMemberID,
		ExpiresAt: now.AddDate(0, 0, invitationExpiryDays), DateCreated: now}

	err = app.storage.InsertInvitation(invitation)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeInvitation, nil, err)
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionInvitationCreated, "invitation", invitation.ID,
		map[string]interface{}{"email": email, "role": string(role)})

	//dispatch after commit so a slow or failing mail server never blocks or
	//unwinds the invitation
	go app.sendInvitationEmail(invitation, token)

	return &invitation, nil
}

func (app *application) sendInvitationEmail(invitation model.Invitation, token string) {
	subject := "You have been invited"
	body := fmt.Sprintf("<p>You have been invited to join an organization as %s.</p>"+
		"<p>Follow <a href=%q>this link</a> to accept. The invitation expires on %s.</p>",
		invitation.Role, fmt.Sprintf("%s/invitations/accept?token=%s", app.host, token),
		invitation.ExpiresAt.Format(time.RFC1123))

	err := app.emailer.Send(invitation.Email, subject, body, nil)
	if err != nil {
		app.logger.Warnf("error sending invitation email for %s: %v", invitation.ID, err)
	}
}

//serAcceptInvitation converts a pending invitation into a member. The status
//transition and the member insert run in one transaction, so a revoke that
//wins the race makes acceptance fail instead of leaving an orphaned member.
func (app *application) serAcceptInvitation(l *logs.Log, token string, userID string) (*model.Member, error) {
	if token == "" || userID == "" {
		return nil, model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusMissing, model.TypeInvitation, nil))
	}

	invitation, err := app.storage.FindInvitationByTokenHash(utils.HashToken(token))
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeInvitation, nil, err)
	}
	if invitation == nil || invitation.Status != model.InvitationStatusPending {
		return nil, model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeInvitation, nil))
	}

	now := time.Now().UTC()
	if invitation.Expired(now) {
		return nil, model.Kinded(model.StatusExpired, errors.ErrorData(model.StatusExpired, model.TypeInvitation, &logutils.FieldArgs{"id": invitation.ID}))
	}

	member := model.Member{ID: uuid.NewString(), OrgID: invitation.OrgID, UserID: userID, Email: invitation.Email,
		Role: invitation.Role, Status: model.MemberStatusActive, DateCreated: now}

	transaction := func(context storage.TransactionContext) error {
		accepted, err := app.storage.UpdateInvitationStatus(context, invitation.ID,
			model.InvitationStatusPending, model.InvitationStatusAccepted, now)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeInvitation, nil, err)
		}
		if !accepted {
			//a concurrent revoke or acceptance won
			return model.Kinded(model.StatusConflict, errors.ErrorData(model.StatusConflict, model.TypeInvitation, &logutils.FieldArgs{"id": invitation.ID}))
		}

		err = app.storage.InsertMember(context, member)
		if err != nil {
			//an already-a-member duplicate surfaces as conflict, not as an
			//opaque insert failure
			if model.ErrorKind(err) != "" {
				return err
			}
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeMember, nil, err)
		}
		return nil
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		if kind := model.ErrorKind(err); kind != "" {
			return nil, err
		}
		return nil, errors.WrapErrorAction("accepting", model.TypeInvitation, nil, err)
	}

	app.audit(l, invitation.OrgID, member.ID, model.AuditActionInvitationAccepted, "invitation", invitation.ID,
		map[string]interface{}{"email": invitation.Email})
	return &member, nil
}

func (app *application) admRevokeInvitation(l *logs.Log, orgID string, actorMemberID string, invitationID string) error {
	invitation, err := app.storage.FindInvitationByID(orgID, invitationID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeInvitation, nil, err)
	}
	if invitation == nil {
		return model.Kinded(model.StatusNotFound, errors.ErrorData(logutils.StatusMissing, model.TypeInvitation, &logutils.FieldArgs{"id": invitationID}))
	}

	revoked, err := app.storage.UpdateInvitationStatus(nil, invitationID,
		model.InvitationStatusPending, model.InvitationStatusRevoked, time.Now().UTC())
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeInvitation, nil, err)
	}
	if !revoked {
		return model.Kinded(model.StatusConflict, errors.ErrorData(model.StatusConflict, model.TypeInvitation, &logutils.FieldArgs{"id": invitationID}))
	}

	app.audit(l, orgID, actorMemberID, model.AuditActionInvitationRevoked, "invitation", invitationID, nil)
	return nil
}

func (app *application) admListInvitations(l *logs.Log, orgID string) ([]model.Invitation, error) {
	invitations, err := app.storage.FindInvitations(orgID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeInvitation, nil, err)
	}
	return invitations, nil
}

//serProcessDeliveryFeedback handles asynchronous delivery feedback from the
//email channel. It only flips the bounce flag on pending invitations - it
//never unwinds an invitation.
func (app *application) serProcessDeliveryFeedback(l *logs.Log, email string, bounced bool) error {
	if email == "" {
		return model.Kinded(model.StatusInvalid, errors.ErrorData(logutils.StatusMissing, model.TypeInvitation, nil))
	}

	updated, err := app.storage.SetInvitationEmailBounced(email, bounced)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeInvitation, nil, err)
	}
	l.Infof("delivery feedback for %s: bounced=%v, updated %d invitations", email, bounced, updated)
	return nil
}
