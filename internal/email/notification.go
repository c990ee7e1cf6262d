// internal/email/notification.go
package email

// Event names a state transition that triggers a notification.
type Event string

const (
	EventOrganizationCreated   Event = "organization_created"
	EventOrganizationPublished Event = "organization_published"
	EventUserInvited           Event = "user_invited"
	EventInviteRevoked         Event = "invite_revoked"
	EventUserJoined            Event = "user_joined"
	EventUserLeft              Event = "user_left"
	EventUserRemoved           Event = "user_removed"
)

// Notification is a single message addressed to a single recipient. One
// notification is built per recipient; nothing is shared or mutated between
// sends.
type Notification struct {
	Event    Event
	Template string
	Subject  string
	To       string
	Locale   string
	Context  map[string]interface{}
}

var subjects = map[string]string{
	"organization_created":   "Your organization was created",
	"organization_published": "Your organization was published",
	"user_invited":           "You've been invited to an organization",
	"user_invited_notice":    "A user was invited to your organization",
	"invite_revoked":         "Your invite was revoked",
	"invite_revoked_notice":  "An invite to your organization was revoked",
	"user_joined":            "You've joined an organization",
	"user_joined_notice":     "A user joined your organization",
	"user_left":              "You've left an organization",
	"user_left_notice":       "A user left your organization",
	"user_removed":           "You were removed from an organization",
	"user_removed_notice":    "A member was removed from your organization",
}

// Build constructs the notification for one recipient. template selects both
// the template group and the subject line.
func Build(event Event, template, recipient, locale string, ctx map[string]interface{}) Notification {
	return Notification{
		Event:    event,
		Template: template,
		Subject:  subjects[template],
		To:       recipient,
		Locale:   locale,
		Context:  ctx,
	}
}
