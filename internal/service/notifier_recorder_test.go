package service_test

import (
	"github.com/openvolunteering/orghub/internal/model"
)

// notifierRecorder captures fired notifications so tests can assert on the
// recipient matrix without a mail stack.
type notifierRecorder struct {
	events []recordedEvent
}

type recordedEvent struct {
	name       string
	org        *model.Organization
	recipients []string
}

func (n *notifierRecorder) record(name string, org *model.Organization, users ...*model.User) {
	event := recordedEvent{name: name, org: org}
	for _, u := range users {
		event.recipients = append(event.recipients, u.Email)
	}
	n.events = append(n.events, event)
}

func (n *notifierRecorder) OrganizationCreated(org *model.Organization, owner *model.User) {
	n.record("organization_created", org, owner)
}

func (n *notifierRecorder) OrganizationPublished(org *model.Organization, owner *model.User) {
	n.record("organization_published", org, owner)
}

func (n *notifierRecorder) UserInvited(org *model.Organization, invited, invitator, owner *model.User) {
	n.record("user_invited", org, invited, invitator, owner)
}

func (n *notifierRecorder) InviteRevoked(org *model.Organization, invited, invitator, owner *model.User) {
	n.record("invite_revoked", org, invited, invitator, owner)
}

func (n *notifierRecorder) UserJoined(org *model.Organization, joined, owner *model.User) {
	n.record("user_joined", org, joined, owner)
}

func (n *notifierRecorder) UserLeft(org *model.Organization, left, owner *model.User) {
	n.record("user_left", org, left, owner)
}

func (n *notifierRecorder) UserRemoved(org *model.Organization, removed, owner *model.User) {
	n.record("user_removed", org, removed, owner)
}

func (n *notifierRecorder) names() []string {
	var names []string
	for _, e := range n.events {
		names = append(names, e.name)
	}
	return names
}
