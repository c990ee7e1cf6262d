package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openvolunteering/orghub/internal/domain"
	"github.com/openvolunteering/orghub/internal/handler"
	"github.com/openvolunteering/orghub/internal/middleware"
	"github.com/openvolunteering/orghub/internal/mocks"
	"github.com/openvolunteering/orghub/internal/model"
	"github.com/openvolunteering/orghub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type noopNotifier struct{}

func (noopNotifier) OrganizationCreated(*model.Organization, *model.User)           {}
func (noopNotifier) OrganizationPublished(*model.Organization, *model.User)         {}
func (noopNotifier) UserInvited(*model.Organization, *model.User, *model.User, *model.User) {
}
func (noopNotifier) InviteRevoked(*model.Organization, *model.User, *model.User, *model.User) {
}
func (noopNotifier) UserJoined(*model.Organization, *model.User, *model.User)  {}
func (noopNotifier) UserLeft(*model.Organization, *model.User, *model.User)    {}
func (noopNotifier) UserRemoved(*model.Organization, *model.User, *model.User) {}

type handlerFixture struct {
	handler    *handler.OrganizationHandler
	orgRepo    *mocks.MockOrganizationRepositoryIface
	userRepo   *mocks.MockUserRepositoryIface
	inviteRepo *mocks.MockInviteRepositoryIface
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		orgRepo:    mocks.NewMockOrganizationRepositoryIface(ctrl),
		userRepo:   mocks.NewMockUserRepositoryIface(ctrl),
		inviteRepo: mocks.NewMockInviteRepositoryIface(ctrl),
	}

	orgService := service.NewOrganizationService(f.orgRepo, f.userRepo, noopNotifier{})
	membershipService := service.NewMembershipService(f.orgRepo, f.userRepo, f.inviteRepo, noopNotifier{})
	f.handler = handler.NewOrganizationHandler(orgService, membershipService)
	return f
}

// newRequest builds a request carrying the slug URL param and, when actorID
// is non-nil, an authenticated user.
func newRequest(method, slug, body string, actorID *uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, "/api/organizations/"+slug, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", slug)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if actorID != nil {
		ctx = context.WithValue(ctx, middleware.UserIDKey, *actorID)
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCreateHandlerUnauthenticated(t *testing.T) {
	f := newHandlerFixture(t)

	req := newRequest(http.MethodPost, "", `{"name": "Test", "type": 0}`, nil)
	rec := httptest.NewRecorder()
	f.handler.CreateHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Authentication credentials were not provided.", body["detail"])
}

func TestCreateHandler(t *testing.T) {
	f := newHandlerFixture(t)
	ownerID := uuid.New()
	owner := &model.User{ID: ownerID, Email: "owner@example.com", Name: "Owner"}

	f.userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil)
	f.orgRepo.EXPECT().SlugExists(gomock.Any(), "test-organization").Return(false, nil)
	f.orgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, org *model.Organization) error {
		org.ID = uuid.New()
		return nil
	})

	req := newRequest(http.MethodPost, "", `{"name": "Test Organization", "type": 0}`, &ownerID)
	rec := httptest.NewRecorder()
	f.handler.CreateHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "test-organization", body["slug"])
	assert.Equal(t, "Test Organization", body["name"])
}

func TestRetrieveHandlerHiddenAddress(t *testing.T) {
	f := newHandlerFixture(t)
	ownerID := uuid.New()
	org := &model.Organization{
		ID:            uuid.New(),
		Name:          "Hidden HQ",
		Slug:          "hidden-hq",
		OwnerID:       ownerID,
		HiddenAddress: true,
		Address:       &model.Address{TypedAddress: "1 Secret Street"},
	}

	// Anonymous requester: address elided.
	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "hidden-hq").Return(org, nil)
	req := newRequest(http.MethodGet, "hidden-hq", "", nil)
	rec := httptest.NewRecorder()
	f.handler.RetrieveHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Nil(t, body["address"])

	// Owner: address included.
	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "hidden-hq").Return(org, nil)
	req = newRequest(http.MethodGet, "hidden-hq", "", &ownerID)
	rec = httptest.NewRecorder()
	f.handler.RetrieveHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.NotNil(t, body["address"])
}

func TestRetrieveHandlerNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "missing").Return(nil, domain.ErrOrganizationNotFound)

	req := newRequest(http.MethodGet, "missing", "", nil)
	rec := httptest.NewRecorder()
	f.handler.RetrieveHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Not found.", body["detail"])
}

func TestInviteUserHandler(t *testing.T) {
	f := newHandlerFixture(t)
	ownerID := uuid.New()
	owner := &model.User{ID: ownerID, Email: "owner@example.com"}
	invited := &model.User{ID: uuid.New(), Email: "invited@example.com"}
	org := &model.Organization{ID: uuid.New(), Slug: "test-org", OwnerID: ownerID}

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "test-org").Return(org, nil)
	f.userRepo.EXPECT().FindByEmail(gomock.Any(), invited.Email).Return(invited, nil)
	f.inviteRepo.EXPECT().FindByOrgAndInvited(gomock.Any(), org.ID, invited.ID).Return(nil, domain.ErrNotInvited)
	f.inviteRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil).Times(2)

	req := newRequest(http.MethodPost, "test-org", `{"email": "invited@example.com"}`, &ownerID)
	rec := httptest.NewRecorder()
	f.handler.InviteUserHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User invited.", body["detail"])
}

func TestInviteUserHandlerUnknownEmail(t *testing.T) {
	f := newHandlerFixture(t)
	ownerID := uuid.New()
	org := &model.Organization{ID: uuid.New(), Slug: "test-org", OwnerID: ownerID}

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "test-org").Return(org, nil)
	f.userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	req := newRequest(http.MethodPost, "test-org", `{"email": "nobody@example.com"}`, &ownerID)
	rec := httptest.NewRecorder()
	f.handler.InviteUserHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []interface{}{"This user is not valid."}, body["email"])
}

func TestListInvitesHandler(t *testing.T) {
	f := newHandlerFixture(t)
	ownerID := uuid.New()
	invited := &model.User{ID: uuid.New(), Email: "invited@example.com", Name: "Invited"}
	org := &model.Organization{ID: uuid.New(), Slug: "test-org", OwnerID: ownerID}
	invites := []*model.OrganizationInvite{
		{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			InvitatorID:    ownerID,
			InvitedID:      invited.ID,
			Invited:        *invited,
		},
	}

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "test-org").Return(org, nil)
	f.inviteRepo.EXPECT().FindByOrg(gomock.Any(), org.ID).Return(invites, nil)

	req := newRequest(http.MethodGet, "test-org", "", &ownerID)
	rec := httptest.NewRecorder()
	f.handler.ListInvitesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "invited@example.com", body[0]["email"])
	assert.Equal(t, "Invited", body[0]["name"])
}

func TestListInvitesHandlerOutsider(t *testing.T) {
	f := newHandlerFixture(t)
	actorID := uuid.New()
	org := &model.Organization{ID: uuid.New(), Slug: "test-org", OwnerID: uuid.New()}

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "test-org").Return(org, nil)
	f.orgRepo.EXPECT().IsMember(gomock.Any(), org.ID, actorID).Return(false, nil)

	req := newRequest(http.MethodGet, "test-org", "", &actorID)
	rec := httptest.NewRecorder()
	f.handler.ListInvitesHandler(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "You do not have permission to perform this action.", body["detail"])
}

func TestJoinHandler(t *testing.T) {
	f := newHandlerFixture(t)
	ownerID := uuid.New()
	owner := &model.User{ID: ownerID, Email: "owner@example.com"}
	actorID := uuid.New()
	actor := &model.User{ID: actorID, Email: "joiner@example.com"}
	org := &model.Organization{ID: uuid.New(), Slug: "test-org", OwnerID: ownerID}
	invite := &model.OrganizationInvite{ID: uuid.New(), OrganizationID: org.ID, InvitatorID: ownerID, InvitedID: actorID}

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "test-org").Return(org, nil)
	f.inviteRepo.EXPECT().FindByOrgAndInvited(gomock.Any(), org.ID, actorID).Return(invite, nil)
	f.orgRepo.EXPECT().AddMember(gomock.Any(), org.ID, actorID).Return(nil)
	f.inviteRepo.EXPECT().Delete(gomock.Any(), invite.ID).Return(nil)
	f.userRepo.EXPECT().FindByID(gomock.Any(), actorID).Return(actor, nil)
	f.userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil)

	req := newRequest(http.MethodPost, "test-org", "", &actorID)
	rec := httptest.NewRecorder()
	f.handler.JoinHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Joined organization.", body["detail"])
}

func TestJoinHandlerWithoutInvite(t *testing.T) {
	f := newHandlerFixture(t)
	actorID := uuid.New()
	org := &model.Organization{ID: uuid.New(), Slug: "test-org", OwnerID: uuid.New()}

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "test-org").Return(org, nil)
	f.inviteRepo.EXPECT().FindByOrgAndInvited(gomock.Any(), org.ID, actorID).Return(nil, domain.ErrNotInvited)

	req := newRequest(http.MethodPost, "test-org", "", &actorID)
	rec := httptest.NewRecorder()
	f.handler.JoinHandler(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "You do not have permission to perform this action.", body["detail"])
}

func TestLeaveHandlerOwner(t *testing.T) {
	f := newHandlerFixture(t)
	ownerID := uuid.New()
	org := &model.Organization{ID: uuid.New(), Slug: "test-org", OwnerID: ownerID}

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "test-org").Return(org, nil)

	req := newRequest(http.MethodPost, "test-org", "", &ownerID)
	rec := httptest.NewRecorder()
	f.handler.LeaveHandler(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "You do not have permission to perform this action.", body["detail"])
}

func TestRemoveMemberHandler(t *testing.T) {
	f := newHandlerFixture(t)
	ownerID := uuid.New()
	owner := &model.User{ID: ownerID, Email: "owner@example.com"}
	member := &model.User{ID: uuid.New(), Email: "member@example.com"}
	org := &model.Organization{ID: uuid.New(), Slug: "test-org", OwnerID: ownerID}

	f.orgRepo.EXPECT().FindBySlug(gomock.Any(), "test-org").Return(org, nil)
	f.userRepo.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(member, nil)
	f.orgRepo.EXPECT().IsMember(gomock.Any(), org.ID, member.ID).Return(true, nil)
	f.orgRepo.EXPECT().RemoveMember(gomock.Any(), org.ID, member.ID).Return(nil)
	f.userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil)

	req := newRequest(http.MethodPost, "test-org", `{"email": "member@example.com"}`, &ownerID)
	rec := httptest.NewRecorder()
	f.handler.RemoveMemberHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Member was removed.", body["detail"])
}
