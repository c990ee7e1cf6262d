// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationType int16

const (
	OrgTypeOrganization OrganizationType = 0
	OrgTypeSchool       OrganizationType = 1
	OrgTypeCompany      OrganizationType = 2
	OrgTypeVolunteers   OrganizationType = 3
)

// DescriptionLength is the maximum length of the short description and the
// number of characters taken from Details when deriving it.
const DescriptionLength = 100

// SlugMaxLength bounds generated slugs before the uniqueness suffix is added.
const SlugMaxLength = 100

type Organization struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:text;not null" json:"name"`
	Slug string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	Owner   User      `gorm:"foreignKey:OwnerID" json:"-"`

	Type         OrganizationType `gorm:"type:smallint;not null" json:"type"`
	Website      string           `gorm:"type:text" json:"website,omitempty"`
	FacebookPage string           `gorm:"type:text" json:"facebook_page,omitempty"`
	Details      string           `gorm:"type:varchar(3000)" json:"details,omitempty"`
	Description  string           `gorm:"type:varchar(160)" json:"description,omitempty"`

	ContactName  string `gorm:"type:text" json:"contact_name,omitempty"`
	ContactEmail string `gorm:"type:text" json:"contact_email,omitempty"`
	ContactPhone string `gorm:"type:text" json:"contact_phone,omitempty"`

	AddressID *uuid.UUID `gorm:"type:uuid" json:"-"`
	Address   *Address   `gorm:"foreignKey:AddressID" json:"address,omitempty"`

	HiddenAddress bool `gorm:"not null;default:false" json:"hidden_address"`
	Highlighted   bool `gorm:"not null;default:false" json:"highlighted"`

	Published     bool       `gorm:"not null;default:false" json:"published"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	Deleted       bool       `gorm:"not null;default:false" json:"deleted"`
	DeletedDate   *time.Time `json:"deleted_date,omitempty"`

	Causes  []Cause `gorm:"many2many:organization_causes" json:"causes,omitempty"`
	Members []User  `gorm:"many2many:organization_members" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationMember is the explicit join row behind Organization.Members.
// The composite primary key keeps the membership a set: adding a member twice
// is a unique violation, not a second row.
type OrganizationMember struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt      time.Time
}

// OrganizationInvite is a pending proposal for a user to join an organization.
// The (organization_id, invited_id) pair is unique: a user holds at most one
// active invite per organization.
type OrganizationInvite struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_org_invited" json:"organization_id"`
	Organization   Organization `gorm:"foreignKey:OrganizationID" json:"-"`

	InvitatorID uuid.UUID `gorm:"type:uuid;not null" json:"invitator_id"`
	Invitator   User      `gorm:"foreignKey:InvitatorID" json:"-"`

	InvitedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_invited" json:"invited_id"`
	Invited   User      `gorm:"foreignKey:InvitedID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

type Address struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TypedAddress string    `gorm:"type:text;not null" json:"typed_address"`
	AddressLine  string    `gorm:"type:text" json:"address_line,omitempty"`
	City         string    `gorm:"type:text" json:"city,omitempty"`
	Country      string    `gorm:"type:text" json:"country,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type Cause struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
}
