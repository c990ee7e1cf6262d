// internal/repository/invite.go
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

type InviteRepositoryIface interface {
	Create(ctx context.Context, invite *model.OrganizationInvite) error
	FindByOrgAndInvited(ctx context.Context, orgID, invitedID uuid.UUID) (*model.OrganizationInvite, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationInvite, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) Create(ctx context.Context, invite *model.OrganizationInvite) error {
	if err := r.db.WithContext(ctx).Create(invite).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyInvited
		}
		return fmt.Errorf("creating invite: %w", err)
	}
	return nil
}

func (r *InviteRepository) FindByOrgAndInvited(ctx context.Context, orgID, invitedID uuid.UUID) (*model.OrganizationInvite, error) {
	var invite model.OrganizationInvite
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND invited_id = ?", orgID, invitedID).
		First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotInvited
		}
		return nil, fmt.Errorf("finding invite: %w", err)
	}
	return &invite, nil
}

// FindByOrg returns the organization's pending invites with the invited user
// loaded, oldest first.
func (r *InviteRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationInvite, error) {
	var invites []*model.OrganizationInvite
	err := r.db.WithContext(ctx).
		Preload("Invited").
		Where("organization_id = ?", orgID).
		Order("created_at").
		Find(&invites).Error
	if err != nil {
		return nil, fmt.Errorf("finding invites: %w", err)
	}
	return invites, nil
}

func (r *InviteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.OrganizationInvite{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting invite: %w", err)
	}
	return nil
}
