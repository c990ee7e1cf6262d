// internal/service/membership.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openvolunteering/orghub/internal/domain"
	"github.com/openvolunteering/orghub/internal/model"
	"github.com/openvolunteering/orghub/internal/repository"
)

// MembershipService drives the invite/join/revoke/leave/remove workflow.
//
// Per (organization, user) pair the states are NOT_INVITED -> INVITED (via
// InviteUser) -> MEMBER (via Join), with INVITED -> NOT_INVITED on
// RevokeInvite and MEMBER -> NOT_INVITED on Leave or RemoveMember. The owner
// is always a member and cannot leave.
type MembershipService struct {
	orgRepo    repository.OrganizationRepositoryIface
	userRepo   repository.UserRepositoryIface
	inviteRepo repository.InviteRepositoryIface
	notifier   Notifier
}

func NewMembershipService(
	orgRepo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	inviteRepo repository.InviteRepositoryIface,
	notifier Notifier,
) *MembershipService {
	return &MembershipService{
		orgRepo:    orgRepo,
		userRepo:   userRepo,
		inviteRepo: inviteRepo,
		notifier:   notifier,
	}
}

// InviteUser creates an invite for the user registered under targetEmail.
// The actor must be the owner or a member. An unknown email is a validation
// error on the email field; an existing invite for the same pair is a
// conflict.
func (s *MembershipService) InviteUser(ctx context.Context, orgSlug string, actorID uuid.UUID, targetEmail string) error {
	org, err := s.orgRepo.FindBySlug(ctx, orgSlug)
	if err != nil {
		return err
	}

	if err := s.requireOwnerOrMember(ctx, org, actorID); err != nil {
		return err
	}

	target, err := s.userRepo.FindByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotValid
		}
		return err
	}

	if _, err := s.inviteRepo.FindByOrgAndInvited(ctx, org.ID, target.ID); err == nil {
		return domain.ErrAlreadyInvited
	} else if !errors.Is(err, domain.ErrNotInvited) {
		return err
	}

	invite := &model.OrganizationInvite{
		OrganizationID: org.ID,
		InvitatorID:    actorID,
		InvitedID:      target.ID,
	}
	// The unique (organization, invited) constraint closes the window between
	// the lookup above and this insert.
	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return err
	}

	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	owner, err := s.userRepo.FindByID(ctx, org.OwnerID)
	if err != nil {
		return err
	}
	s.notifier.UserInvited(org, target, actor, owner)

	return nil
}

// Join accepts a pending invite and adds the actor to the members. An actor
// without a matching invite is refused. The consumed invite is deleted, so a
// second Join needs a fresh invite.
func (s *MembershipService) Join(ctx context.Context, orgSlug string, actorID uuid.UUID) error {
	org, err := s.orgRepo.FindBySlug(ctx, orgSlug)
	if err != nil {
		return err
	}

	invite, err := s.inviteRepo.FindByOrgAndInvited(ctx, org.ID, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotInvited) {
			return domain.ErrForbidden
		}
		return err
	}

	if err := s.orgRepo.AddMember(ctx, org.ID, actorID); err != nil {
		return err
	}

	if err := s.inviteRepo.Delete(ctx, invite.ID); err != nil {
		return err
	}

	joined, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	owner, err := s.userRepo.FindByID(ctx, org.OwnerID)
	if err != nil {
		return err
	}
	s.notifier.UserJoined(org, joined, owner)

	return nil
}

// ListInvites returns the organization's pending invites. The actor must be
// the owner or a member; invites are not visible to outsiders.
func (s *MembershipService) ListInvites(ctx context.Context, orgSlug string, actorID uuid.UUID) ([]*model.OrganizationInvite, error) {
	org, err := s.orgRepo.FindBySlug(ctx, orgSlug)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwnerOrMember(ctx, org, actorID); err != nil {
		return nil, err
	}

	return s.inviteRepo.FindByOrg(ctx, org.ID)
}

// RevokeInvite deletes the pending invite for the user registered under
// targetEmail. The actor must be the owner or a member. Notifications mirror
// InviteUser's branching, based on who originally sent the invite.
func (s *MembershipService) RevokeInvite(ctx context.Context, orgSlug string, actorID uuid.UUID, targetEmail string) error {
	org, err := s.orgRepo.FindBySlug(ctx, orgSlug)
	if err != nil {
		return err
	}

	if err := s.requireOwnerOrMember(ctx, org, actorID); err != nil {
		return err
	}

	target, err := s.userRepo.FindByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotValid
		}
		return err
	}

	invite, err := s.inviteRepo.FindByOrgAndInvited(ctx, org.ID, target.ID)
	if err != nil {
		return err
	}

	if err := s.inviteRepo.Delete(ctx, invite.ID); err != nil {
		return err
	}

	invitator, err := s.userRepo.FindByID(ctx, invite.InvitatorID)
	if err != nil {
		return err
	}
	owner, err := s.userRepo.FindByID(ctx, org.OwnerID)
	if err != nil {
		return err
	}
	s.notifier.InviteRevoked(org, target, invitator, owner)

	return nil
}

// Leave removes the actor from the members. The owner cannot leave their own
// organization; a non-member cannot leave either.
func (s *MembershipService) Leave(ctx context.Context, orgSlug string, actorID uuid.UUID) error {
	org, err := s.orgRepo.FindBySlug(ctx, orgSlug)
	if err != nil {
		return err
	}

	if org.OwnerID == actorID {
		return domain.ErrOwnerCannotLeave
	}

	isMember, err := s.orgRepo.IsMember(ctx, org.ID, actorID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrForbidden
	}

	if err := s.orgRepo.RemoveMember(ctx, org.ID, actorID); err != nil {
		return err
	}

	left, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	owner, err := s.userRepo.FindByID(ctx, org.OwnerID)
	if err != nil {
		return err
	}
	s.notifier.UserLeft(org, left, owner)

	return nil
}

// RemoveMember removes the user registered under targetEmail from the
// members. Only the owner may remove members; a target that is not a current
// member is a validation error on the email field.
func (s *MembershipService) RemoveMember(ctx context.Context, orgSlug string, actorID uuid.UUID, targetEmail string) error {
	org, err := s.orgRepo.FindBySlug(ctx, orgSlug)
	if err != nil {
		return err
	}

	if org.OwnerID != actorID {
		return domain.ErrForbidden
	}

	target, err := s.userRepo.FindByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotValid
		}
		return err
	}

	isMember, err := s.orgRepo.IsMember(ctx, org.ID, target.ID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrUserNotValid
	}

	if err := s.orgRepo.RemoveMember(ctx, org.ID, target.ID); err != nil {
		return err
	}

	owner, err := s.userRepo.FindByID(ctx, org.OwnerID)
	if err != nil {
		return err
	}
	s.notifier.UserRemoved(org, target, owner)

	return nil
}

// requireOwnerOrMember raises when the actor is neither the owner nor a
// member. Owner equality is checked before set membership.
func (s *MembershipService) requireOwnerOrMember(ctx context.Context, org *model.Organization, actorID uuid.UUID) error {
	if org.OwnerID == actorID {
		return nil
	}
	isMember, err := s.orgRepo.IsMember(ctx, org.ID, actorID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrForbidden
	}
	return nil
}
