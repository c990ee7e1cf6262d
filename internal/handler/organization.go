// internal/handler/organization.go
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/openvolunteering/orghub/internal/middleware"
	"github.com/openvolunteering/orghub/internal/model"
	"github.com/openvolunteering/orghub/internal/service"
)

type OrganizationHandler struct {
	orgService        *service.OrganizationService
	membershipService *service.MembershipService
}

func NewOrganizationHandler(orgService *service.OrganizationService, membershipService *service.MembershipService) *OrganizationHandler {
	return &OrganizationHandler{
		orgService:        orgService,
		membershipService: membershipService,
	}
}

// OrganizationResponse is the public representation of an organization. The
// address is elided when the organization hides it and the requester is
// neither owner nor member.
type OrganizationResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Slug          string                 `json:"slug"`
	Type          model.OrganizationType `json:"type"`
	Website       string                 `json:"website,omitempty"`
	FacebookPage  string                 `json:"facebook_page,omitempty"`
	Details       string                 `json:"details,omitempty"`
	Description   string                 `json:"description,omitempty"`
	ContactName   string                 `json:"contact_name,omitempty"`
	ContactEmail  string                 `json:"contact_email,omitempty"`
	ContactPhone  string                 `json:"contact_phone,omitempty"`
	HiddenAddress bool                   `json:"hidden_address"`
	Published     bool                   `json:"published"`
	Address       *model.Address         `json:"address"`
	Causes        []model.Cause          `json:"causes,omitempty"`
}

func newOrganizationResponse(org *model.Organization, includeAddress bool) OrganizationResponse {
	resp := OrganizationResponse{
		ID:            org.ID.String(),
		Name:          org.Name,
		Slug:          org.Slug,
		Type:          org.Type,
		Website:       org.Website,
		FacebookPage:  org.FacebookPage,
		Details:       org.Details,
		Description:   org.Description,
		ContactName:   org.ContactName,
		ContactEmail:  org.ContactEmail,
		ContactPhone:  org.ContactPhone,
		HiddenAddress: org.HiddenAddress,
		Published:     org.Published,
		Causes:        org.Causes,
	}
	if includeAddress {
		resp.Address = org.Address
	}
	return resp
}

// CreateHandler handles POST /organizations.
func (h *OrganizationHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var input service.CreateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	defer r.Body.Close()

	org, err := h.orgService.Create(r.Context(), actorID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Organization create error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithWorkflowError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, newOrganizationResponse(org, true))
}

// RetrieveHandler handles GET /organizations/{slug}. The endpoint is public;
// the address field is hidden from outsiders when hidden_address is set.
func (h *OrganizationHandler) RetrieveHandler(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgService.Retrieve(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondWithWorkflowError(w, err)
		return
	}

	includeAddress := true
	if org.HiddenAddress {
		includeAddress = false
		if userID, ok := middleware.UserID(r.Context()); ok {
			includeAddress, err = h.orgService.IsOwnerOrMember(r.Context(), org, userID)
			if err != nil {
				respondWithWorkflowError(w, err)
				return
			}
		}
	}

	respondWithJSON(w, http.StatusOK, newOrganizationResponse(org, includeAddress))
}

// UpdateHandler handles PATCH /organizations/{slug}. Partial update only; no
// full PUT is exposed.
func (h *OrganizationHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var input service.UpdateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	defer r.Body.Close()

	org, err := h.orgService.Update(r.Context(), chi.URLParam(r, "slug"), actorID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Organization update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithWorkflowError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, newOrganizationResponse(org, true))
}

// InviteResponse is one pending invite in the listing, identified by the
// invited user.
type InviteResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListInvitesHandler handles GET /organizations/{slug}/invites. Only the
// owner and members see the pending invites.
func (h *OrganizationHandler) ListInvitesHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	invites, err := h.membershipService.ListInvites(r.Context(), chi.URLParam(r, "slug"), actorID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Invite listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithWorkflowError(w, err)
		return
	}

	resp := make([]InviteResponse, 0, len(invites))
	for _, invite := range invites {
		resp = append(resp, InviteResponse{
			Email:     invite.Invited.Email,
			Name:      invite.Invited.Name,
			CreatedAt: invite.CreatedAt,
		})
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// memberActionInput carries the target email of the invite/revoke/remove
// actions.
type memberActionInput struct {
	Email string `json:"email"`
}

// InviteUserHandler handles POST /organizations/{slug}/invite_user.
func (h *OrganizationHandler) InviteUserHandler(w http.ResponseWriter, r *http.Request) {
	h.memberAction(w, r, h.membershipService.InviteUser, "User invited.")
}

// RevokeInviteHandler handles POST /organizations/{slug}/revoke_invite.
func (h *OrganizationHandler) RevokeInviteHandler(w http.ResponseWriter, r *http.Request) {
	h.memberAction(w, r, h.membershipService.RevokeInvite, "Invite has been revoked.")
}

// RemoveMemberHandler handles POST /organizations/{slug}/remove_member.
func (h *OrganizationHandler) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	h.memberAction(w, r, h.membershipService.RemoveMember, "Member was removed.")
}

// JoinHandler handles POST /organizations/{slug}/join.
func (h *OrganizationHandler) JoinHandler(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, h.membershipService.Join, "Joined organization.")
}

// LeaveHandler handles POST /organizations/{slug}/leave.
func (h *OrganizationHandler) LeaveHandler(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, h.membershipService.Leave, "You've left the organization.")
}

func (h *OrganizationHandler) memberAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, orgSlug string, actorID uuid.UUID, targetEmail string) error,
	successDetail string,
) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	var input memberActionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	defer r.Body.Close()

	if err := action(r.Context(), chi.URLParam(r, "slug"), actorID, input.Email); err != nil {
		slog.ErrorContext(r.Context(), "Membership action error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithWorkflowError(w, err)
		return
	}

	respondWithDetail(w, http.StatusOK, successDetail)
}

func (h *OrganizationHandler) selfAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, orgSlug string, actorID uuid.UUID) error,
	successDetail string,
) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	if err := action(r.Context(), chi.URLParam(r, "slug"), actorID); err != nil {
		slog.ErrorContext(r.Context(), "Membership action error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithWorkflowError(w, err)
		return
	}

	respondWithDetail(w, http.StatusOK, successDetail)
}
