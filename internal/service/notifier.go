// internal/service/notifier.go
package service

import "github.com/openvolunteering/orghub/internal/model"

// Notifier fires transactional notifications on state transitions. Calls are
// fire-and-forget: implementations must never surface delivery failures to
// the caller. *email.OrganizationMailer satisfies it.
type Notifier interface {
	OrganizationCreated(org *model.Organization, owner *model.User)
	OrganizationPublished(org *model.Organization, owner *model.User)
	UserInvited(org *model.Organization, invited, invitator, owner *model.User)
	InviteRevoked(org *model.Organization, invited, invitator, owner *model.User)
	UserJoined(org *model.Organization, joined, owner *model.User)
	UserLeft(org *model.Organization, left, owner *model.User)
	UserRemoved(org *model.Organization, removed, owner *model.User)
}
