// internal/email/org_mailer.go
package email

import (
	"github.com/openvolunteering/orghub/internal/model"
)

const defaultLocale = "en"

// OrganizationMailer fires the transactional emails tied to organization and
// membership state transitions. Recipient fan-out lives here; delivery is the
// dispatcher's problem.
type OrganizationMailer struct {
	dispatcher *Dispatcher
}

func NewOrganizationMailer(dispatcher *Dispatcher) *OrganizationMailer {
	return &OrganizationMailer{dispatcher: dispatcher}
}

func orgContext(org *model.Organization, extra map[string]interface{}) map[string]interface{} {
	ctx := map[string]interface{}{
		"OrganizationName": org.Name,
		"OrganizationSlug": org.Slug,
	}
	for k, v := range extra {
		ctx[k] = v
	}
	return ctx
}

// OrganizationCreated is sent to the owner when the organization is created.
func (m *OrganizationMailer) OrganizationCreated(org *model.Organization, owner *model.User) {
	ctx := orgContext(org, map[string]interface{}{"OwnerName": owner.Name})
	m.dispatcher.Submit(Build(EventOrganizationCreated, "organization_created", owner.Email, defaultLocale, ctx))
}

// OrganizationPublished is sent to the owner on the publish transition.
func (m *OrganizationMailer) OrganizationPublished(org *model.Organization, owner *model.User) {
	ctx := orgContext(org, map[string]interface{}{"OwnerName": owner.Name})
	m.dispatcher.Submit(Build(EventOrganizationPublished, "organization_published", owner.Email, defaultLocale, ctx))
}

// UserInvited notifies the invited user and the owner, plus the inviter when
// the inviter is not the owner.
func (m *OrganizationMailer) UserInvited(org *model.Organization, invited, invitator, owner *model.User) {
	ctx := orgContext(org, map[string]interface{}{
		"InvitedName":   invited.Name,
		"InvitatorName": invitator.Name,
	})

	m.dispatcher.Submit(Build(EventUserInvited, "user_invited", invited.Email, defaultLocale, ctx))
	m.dispatcher.Submit(Build(EventUserInvited, "user_invited_notice", owner.Email, defaultLocale, ctx))
	if invitator.ID != owner.ID {
		m.dispatcher.Submit(Build(EventUserInvited, "user_invited_notice", invitator.Email, defaultLocale, ctx))
	}
}

// InviteRevoked notifies the invited user; the owner/inviter branching
// mirrors UserInvited, based on who originally sent the invite.
func (m *OrganizationMailer) InviteRevoked(org *model.Organization, invited, invitator, owner *model.User) {
	ctx := orgContext(org, map[string]interface{}{
		"InvitedName":   invited.Name,
		"InvitatorName": invitator.Name,
	})

	m.dispatcher.Submit(Build(EventInviteRevoked, "invite_revoked", invited.Email, defaultLocale, ctx))
	m.dispatcher.Submit(Build(EventInviteRevoked, "invite_revoked_notice", owner.Email, defaultLocale, ctx))
	if invitator.ID != owner.ID {
		m.dispatcher.Submit(Build(EventInviteRevoked, "invite_revoked_notice", invitator.Email, defaultLocale, ctx))
	}
}

// UserJoined notifies the joining user and the owner.
func (m *OrganizationMailer) UserJoined(org *model.Organization, joined, owner *model.User) {
	ctx := orgContext(org, map[string]interface{}{"MemberName": joined.Name})
	m.dispatcher.Submit(Build(EventUserJoined, "user_joined", joined.Email, defaultLocale, ctx))
	m.dispatcher.Submit(Build(EventUserJoined, "user_joined_notice", owner.Email, defaultLocale, ctx))
}

// UserLeft notifies the leaving user and the owner.
func (m *OrganizationMailer) UserLeft(org *model.Organization, left, owner *model.User) {
	ctx := orgContext(org, map[string]interface{}{"MemberName": left.Name})
	m.dispatcher.Submit(Build(EventUserLeft, "user_left", left.Email, defaultLocale, ctx))
	m.dispatcher.Submit(Build(EventUserLeft, "user_left_notice", owner.Email, defaultLocale, ctx))
}

// UserRemoved notifies the removed user and the owner.
func (m *OrganizationMailer) UserRemoved(org *model.Organization, removed, owner *model.User) {
	ctx := orgContext(org, map[string]interface{}{"MemberName": removed.Name})
	m.dispatcher.Submit(Build(EventUserRemoved, "user_removed", removed.Email, defaultLocale, ctx))
	m.dispatcher.Submit(Build(EventUserRemoved, "user_removed_notice", owner.Email, defaultLocale, ctx))
}
