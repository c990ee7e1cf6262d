// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openvolunteering/orghub/internal/domain"
	"github.com/openvolunteering/orghub/internal/model"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindBySlug(ctx context.Context, slug string) (*model.Organization, error)
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error)
	Update(ctx context.Context, org *model.Organization) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error
	IsMember(ctx context.Context, orgID, userID uuid.UUID) (bool, error)
	ReplaceCauses(ctx context.Context, org *model.Organization, causes []model.Cause) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create persists the organization and its owner membership in one
// transaction. The slug uniqueness constraint is the final guard against
// concurrent creations with the same generated slug.
func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if org.Address != nil {
			if err := tx.Create(org.Address).Error; err != nil {
				return fmt.Errorf("creating address: %w", err)
			}
			org.AddressID = &org.Address.ID
		}

		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		member := &model.OrganizationMember{OrganizationID: org.ID, UserID: org.OwnerID}
		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("adding owner membership: %w", err)
		}

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Preload("Address").Preload("Causes").First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Preload("Address").Preload("Causes").First(&org, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

// FindAllPaginated returns a paginated list of organizations.
func (r *OrganizationRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error) {
	var orgs []*model.Organization
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Organization{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	result := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("created_at").Find(&orgs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated organizations: %w", result.Error)
	}

	return orgs, count, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Organization{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking slug: %w", err)
	}
	return count > 0, nil
}

func (r *OrganizationRepository) AddMember(ctx context.Context, orgID, userID uuid.UUID) error {
	member := &model.OrganizationMember{OrganizationID: orgID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		// Duplicate membership is not an error; the set semantics win.
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("adding member: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Delete(&model.OrganizationMember{})
	if result.Error != nil {
		return fmt.Errorf("removing member: %w", result.Error)
	}
	return nil
}

func (r *OrganizationRepository) IsMember(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.OrganizationMember{}).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking membership: %w", err)
	}
	return count > 0, nil
}

// ReplaceCauses replaces the organization's cause associations with the
// supplied list.
func (r *OrganizationRepository) ReplaceCauses(ctx context.Context, org *model.Organization, causes []model.Cause) error {
	if err := r.db.WithContext(ctx).Model(org).Association("Causes").Replace(causes); err != nil {
		return fmt.Errorf("replacing causes: %w", err)
	}
	return nil
}
