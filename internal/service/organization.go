// internal/service/organization.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/openvolunteering/orghub/internal/domain"
	"github.com/openvolunteering/orghub/internal/model"
	"github.com/openvolunteering/orghub/internal/repository"
	"github.com/openvolunteering/orghub/internal/slug"
)

type OrganizationService struct {
	orgRepo  repository.OrganizationRepositoryIface
	userRepo repository.UserRepositoryIface
	notifier Notifier
	validate *validator.Validate
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	notifier Notifier,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		notifier: notifier,
		validate: validator.New(),
	}
}

type AddressInput struct {
	TypedAddress string `json:"typed_address" validate:"required"`
	AddressLine  string `json:"address_line"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

type CreateOrganizationInput struct {
	Name          string                  `json:"name" validate:"required,max=150"`
	Type          *model.OrganizationType `json:"type" validate:"required"`
	Website       string                  `json:"website" validate:"omitempty,url"`
	FacebookPage  string                  `json:"facebook_page" validate:"omitempty,url"`
	Details       string                  `json:"details" validate:"max=3000"`
	Description   string                  `json:"description" validate:"max=160"`
	ContactName   string                  `json:"contact_name"`
	ContactEmail  string                  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone  string                  `json:"contact_phone"`
	HiddenAddress bool                    `json:"hidden_address"`
	Address       *AddressInput           `json:"address"`
	CauseIDs      []uuid.UUID             `json:"causes"`
}

// Create builds a new organization owned by ownerID. The slug is generated
// from the name (any slug in the payload is ignored), the owner becomes the
// first member, and a "created" notification goes to the owner.
func (s *OrganizationService) Create(ctx context.Context, ownerID uuid.UUID, input CreateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	generatedSlug, err := s.generateSlug(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:          input.Name,
		Slug:          generatedSlug,
		OwnerID:       owner.ID,
		Type:          *input.Type,
		Website:       input.Website,
		FacebookPage:  input.FacebookPage,
		Details:       input.Details,
		Description:   input.Description,
		ContactName:   input.ContactName,
		ContactEmail:  input.ContactEmail,
		ContactPhone:  input.ContactPhone,
		HiddenAddress: input.HiddenAddress,
	}

	if org.Description == "" {
		org.Description = deriveDescription(org.Details)
	}

	if input.Address != nil {
		org.Address = &model.Address{
			TypedAddress: input.Address.TypedAddress,
			AddressLine:  input.Address.AddressLine,
			City:         input.Address.City,
			Country:      input.Address.Country,
		}
	}

	if len(input.CauseIDs) > 0 {
		org.Causes = causesFromIDs(input.CauseIDs)
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	s.notifier.OrganizationCreated(org, owner)

	return org, nil
}

// Retrieve returns the organization with the given slug.
func (s *OrganizationService) Retrieve(ctx context.Context, orgSlug string) (*model.Organization, error) {
	return s.orgRepo.FindBySlug(ctx, orgSlug)
}

type UpdateOrganizationInput struct {
	Name          *string                 `json:"name" validate:"omitempty,max=150"`
	Slug          *string                 `json:"slug"`
	Type          *model.OrganizationType `json:"type"`
	Website       *string                 `json:"website" validate:"omitempty,url"`
	FacebookPage  *string                 `json:"facebook_page" validate:"omitempty,url"`
	Details       *string                 `json:"details" validate:"omitempty,max=3000"`
	Description   *string                 `json:"description" validate:"omitempty,max=160"`
	ContactName   *string                 `json:"contact_name"`
	ContactEmail  *string                 `json:"contact_email" validate:"omitempty,email"`
	ContactPhone  *string                 `json:"contact_phone"`
	HiddenAddress *bool                   `json:"hidden_address"`
	Address       *AddressInput           `json:"address"`
	CauseIDs      *[]uuid.UUID            `json:"causes"`
}

// Update applies a partial update. Absent fields keep their values. The slug
// is never regenerated from the name; it only changes when explicitly
// supplied. A supplied causes list replaces the existing association.
func (s *OrganizationService) Update(ctx context.Context, orgSlug string, actorID uuid.UUID, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	org, err := s.orgRepo.FindBySlug(ctx, orgSlug)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwnerOrMember(ctx, org, actorID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name may not be blank", domain.ErrInvalidInput)
		}
		org.Name = *input.Name
	}
	if input.Slug != nil && *input.Slug != "" {
		org.Slug = slug.Make(*input.Slug, model.SlugMaxLength)
	}
	if input.Type != nil {
		org.Type = *input.Type
	}
	if input.Website != nil {
		org.Website = *input.Website
	}
	if input.FacebookPage != nil {
		org.FacebookPage = *input.FacebookPage
	}
	if input.Details != nil {
		org.Details = *input.Details
	}
	if input.Description != nil {
		org.Description = *input.Description
	}
	if input.ContactName != nil {
		org.ContactName = *input.ContactName
	}
	if input.ContactEmail != nil {
		org.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		org.ContactPhone = *input.ContactPhone
	}
	if input.HiddenAddress != nil {
		org.HiddenAddress = *input.HiddenAddress
	}

	// Derivation only fills an empty description; an existing one is never
	// overwritten by a details change.
	if org.Description == "" {
		org.Description = deriveDescription(org.Details)
	}

	if input.Address != nil {
		org.Address = &model.Address{
			TypedAddress: input.Address.TypedAddress,
			AddressLine:  input.Address.AddressLine,
			City:         input.Address.City,
			Country:      input.Address.Country,
		}
		org.AddressID = nil
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	if input.CauseIDs != nil {
		if err := s.orgRepo.ReplaceCauses(ctx, org, causesFromIDs(*input.CauseIDs)); err != nil {
			return nil, err
		}
	}

	return org, nil
}

// Publish marks the organization published. The published date is stamped
// and the notification fired only on the false-to-true transition; publishing
// an already-published organization is a no-op.
func (s *OrganizationService) Publish(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if org.Published {
		return org, nil
	}

	now := time.Now().UTC()
	org.Published = true
	if org.PublishedDate == nil {
		org.PublishedDate = &now
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByID(ctx, org.OwnerID)
	if err != nil {
		return nil, err
	}
	s.notifier.OrganizationPublished(org, owner)

	return org, nil
}

// Unpublish clears the published flag. The published date is kept: it records
// the first publish transition and is stamped at most once.
func (s *OrganizationService) Unpublish(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !org.Published {
		return org, nil
	}

	org.Published = false
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// Delete soft-deletes the organization. Deleting forces published=false; the
// deleted date is stamped once, on the first delete.
func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if org.Deleted {
		return org, nil
	}

	now := time.Now().UTC()
	org.Deleted = true
	org.Published = false
	if org.DeletedDate == nil {
		org.DeletedDate = &now
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// SetHighlighted flips the curation flag. Highlighting is an operator action;
// no HTTP endpoint exposes it.
func (s *OrganizationService) SetHighlighted(ctx context.Context, id uuid.UUID, highlighted bool) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if org.Highlighted == highlighted {
		return org, nil
	}

	org.Highlighted = highlighted
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// List returns a page of organizations, for the admin tool.
func (s *OrganizationService) List(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error) {
	return s.orgRepo.FindAllPaginated(ctx, offset, limit)
}

// generateSlug derives a unique slug from name, resolving collisions by
// appending -1, -2, ... in increasing order.
func (s *OrganizationService) generateSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name, model.SlugMaxLength)
	if base == "" {
		return "", nil
	}

	candidate := base
	for i := 1; ; i++ {
		exists, err := s.orgRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// IsOwnerOrMember reports whether the user owns the organization or belongs
// to its member set. Owner equality is checked first.
func (s *OrganizationService) IsOwnerOrMember(ctx context.Context, org *model.Organization, userID uuid.UUID) (bool, error) {
	if org.OwnerID == userID {
		return true, nil
	}
	return s.orgRepo.IsMember(ctx, org.ID, userID)
}

// requireOwnerOrMember raises when the actor is neither the owner nor a
// member.
func (s *OrganizationService) requireOwnerOrMember(ctx context.Context, org *model.Organization, actorID uuid.UUID) error {
	ok, err := s.IsOwnerOrMember(ctx, org, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// deriveDescription takes the leading characters of details as a short
// description.
func deriveDescription(details string) string {
	runes := []rune(details)
	if len(runes) <= model.DescriptionLength {
		return details
	}
	return string(runes[:model.DescriptionLength])
}

func causesFromIDs(ids []uuid.UUID) []model.Cause {
	causes := make([]model.Cause, 0, len(ids))
	for _, id := range ids {
		causes = append(causes, model.Cause{ID: id})
	}
	return causes
}
