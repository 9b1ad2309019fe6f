package sponsors

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

type fakeRepo struct {
	sponsors map[uuid.UUID]*Sponsor
	requests map[uuid.UUID]*SponsorshipRequest
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		sponsors: make(map[uuid.UUID]*Sponsor),
		requests: make(map[uuid.UUID]*SponsorshipRequest),
	}
}

func (f *fakeRepo) CreateProfile(sponsor *Sponsor) error {
	if sponsor.ID == uuid.Nil {
		sponsor.ID = uuid.New()
	}
	f.sponsors[sponsor.ID] = sponsor
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Sponsor, error) {
	sponsor, ok := f.sponsors[id]
	if !ok {
		return nil, ErrSponsorNotFound
	}
	return sponsor, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Sponsor, error) {
	for _, sponsor := range f.sponsors {
		if sponsor.UserID == userID {
			return sponsor, nil
		}
	}
	return nil, ErrSponsorNotFound
}

func (f *fakeRepo) ListVerified(_ context.Context) ([]Sponsor, error) {
	var out []Sponsor
	for _, sponsor := range f.sponsors {
		if sponsor.IsVerified {
			out = append(out, *sponsor)
		}
	}
	return out, nil
}

func (f *fakeRepo) SetVerified(_ context.Context, id uuid.UUID, verified bool) error {
	sponsor, ok := f.sponsors[id]
	if !ok {
		return ErrSponsorNotFound
	}
	sponsor.IsVerified = verified
	return nil
}

func (f *fakeRepo) CreateRequest(request *SponsorshipRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRepo) GetRequest(_ context.Context, id uuid.UUID) (*SponsorshipRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	return request, nil
}

func (f *fakeRepo) ListRequestsForSponsor(_ context.Context, sponsorID uuid.UUID) ([]SponsorshipRequest, error) {
	var out []SponsorshipRequest
	for _, request := range f.requests {
		if request.SponsorID == sponsorID {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateRequestStatus(_ context.Context, id uuid.UUID, from, to RequestStatus) error {
	request, ok := f.requests[id]
	if !ok || request.Status != from {
		return ErrRequestNotFound
	}
	request.Status = to
	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) error { return cache.ErrCacheMiss }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noopCache) Delete(context.Context, string) error        { return nil }
func (noopCache) DeletePattern(context.Context, string) error { return nil }
func (noopCache) Exists(context.Context, string) bool         { return false }
func (noopCache) Ping(context.Context) error                  { return nil }

func (noopCache) GetOrSet(_ context.Context, _ string, _ time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	data, err := fetcher()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	return NewService(repo, noopCache{}, logger.New()), repo
}

func TestRequestTargetsSponsorFromPath(t *testing.T) {
	svc, _ := newTestService(t)

	sponsorUser := uuid.New()
	profile, err := svc.CreateProfile(context.Background(), sponsorUser, CreateProfileRequest{
		CompanyName: "Dangote Group",
	})
	require.NoError(t, err)

	organizer := uuid.New()
	request, err := svc.RequestSponsorship(context.Background(), organizer, profile.ID, SponsorshipRequestBody{
		Message: "Please sponsor our Lagos tech conference",
		Budget:  500000,
	})
	require.NoError(t, err)

	// The stored target is the sponsor from the path, and the
	// requester is the caller, never mixed up.
	assert.Equal(t, profile.ID, request.SponsorID)
	assert.Equal(t, organizer, request.RequesterID)
	assert.Equal(t, RequestPending, request.Status)

	mine, err := svc.ListMyRequests(context.Background(), sponsorUser)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, request.ID, mine[0].ID)
}

func TestRequestToUnknownSponsorFails(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RequestSponsorship(context.Background(), uuid.New(), uuid.New(), SponsorshipRequestBody{
		Message: "Please sponsor our festival",
	})
	assert.ErrorIs(t, err, ErrSponsorNotFound)
}

func TestDuplicateProfileRejected(t *testing.T) {
	svc, _ := newTestService(t)

	userID := uuid.New()
	_, err := svc.CreateProfile(context.Background(), userID, CreateProfileRequest{CompanyName: "MTN Nigeria"})
	require.NoError(t, err)

	_, err = svc.CreateProfile(context.Background(), userID, CreateProfileRequest{CompanyName: "MTN Nigeria"})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestOnlyVerifiedSponsorsListed(t *testing.T) {
	svc, _ := newTestService(t)

	verified, err := svc.CreateProfile(context.Background(), uuid.New(), CreateProfileRequest{CompanyName: "GTBank"})
	require.NoError(t, err)
	_, err = svc.CreateProfile(context.Background(), uuid.New(), CreateProfileRequest{CompanyName: "Unknown Ltd"})
	require.NoError(t, err)

	require.NoError(t, svc.VerifySponsor(context.Background(), verified.ID))

	listed, err := svc.ListVerified(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "GTBank", listed[0].CompanyName)
}

func TestOnlyTargetSponsorCanRespond(t *testing.T) {
	svc, _ := newTestService(t)

	targetUser := uuid.New()
	target, err := svc.CreateProfile(context.Background(), targetUser, CreateProfileRequest{CompanyName: "Zenith Bank"})
	require.NoError(t, err)

	otherUser := uuid.New()
	_, err = svc.CreateProfile(context.Background(), otherUser, CreateProfileRequest{CompanyName: "Access Bank"})
	require.NoError(t, err)

	request, err := svc.RequestSponsorship(context.Background(), uuid.New(), target.ID, SponsorshipRequestBody{
		Message: "Sponsorship for our awards night",
	})
	require.NoError(t, err)

	err = svc.RespondToRequest(context.Background(), otherUser, request.ID, true)
	assert.ErrorIs(t, err, ErrNotRequestTarget)

	require.NoError(t, svc.RespondToRequest(context.Background(), targetUser, request.ID, true))

	err = svc.RespondToRequest(context.Background(), targetUser, request.ID, false)
	assert.ErrorIs(t, err, ErrRequestNotPending)
}
