package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/adpanel/internal/client/ads"
	"github.com/iudanet/adpanel/internal/client/storage"
	"github.com/iudanet/adpanel/internal/client/submit"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

func boolPtr(b bool) *bool { return &b }

func sampleAds() []pkgapi.Ad {
	return []pkgapi.Ad{
		{ID: "ad-1", Link: "https://shop.example.com/a", IsVertical: boolPtr(true), IsShown: true, Views: pkgapi.Views{TodayViews: 3, TotalViews: 10}},
		{ID: "ad-2", Link: "https://shop.example.com/b", IsVertical: boolPtr(false)},
	}
}

func TestAdsList(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, false)
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return sampleAds(), nil
	}

	require.NoError(t, env.run("ads"))

	out := env.out.String()
	assert.Contains(t, out, "=== Your Ads ===")
	assert.Contains(t, out, "Found 2 ad(s):")
	assert.Contains(t, out, "Location: vertical")
	assert.Contains(t, out, "Views:    3 today / 10 total")
	assert.NotContains(t, out, "cached")
}

func TestAdsList_Empty(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, false)
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return nil, nil
	}

	require.NoError(t, env.run("ads", "list"))
	assert.Contains(t, env.out.String(), "No ads found.")
	assert.Contains(t, env.out.String(), "adpanel draft new")
}

func TestAdsList_OfflineUsesCache(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.login(t, false)
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionAds, sampleAds()))
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return nil, errors.New("connection refused")
	}

	require.NoError(t, env.run("ads", "list"))

	out := env.out.String()
	assert.Contains(t, out, "✗ "+submit.MsgServerError)
	assert.Contains(t, out, "ad-1")
	assert.Contains(t, out, "server unavailable")
}

func TestAdsToggle(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, false)
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return sampleAds(), nil
	}
	env.client.SubmitAdFunc = func(ctx context.Context, req pkgapi.AdSubmitRequest) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{}, nil
	}

	require.NoError(t, env.run("ads", "toggle", "ad-2"))

	require.Len(t, env.client.SubmitAdCalls(), 1)
	req := env.client.SubmitAdCalls()[0].Req
	assert.Equal(t, "ad-2", req.ID)
	require.NotNil(t, req.IsShown)
	assert.True(t, *req.IsShown)
	assert.Contains(t, env.out.String(), "Ad ad-2 is now shown")
}

func TestAdsToggle_Failure(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, false)
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return sampleAds(), nil
	}
	env.client.SubmitAdFunc = func(ctx context.Context, req pkgapi.AdSubmitRequest) (*pkgapi.MessageResponse, error) {
		return nil, errors.New("connection reset")
	}

	err := env.run("ads", "toggle", "ad-1")
	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, env.out.String(), "✗ "+ads.MsgToggleFailed)
}

func TestAdsDelete(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		env := newTestEnv(t, "y")
		env.login(t, false)
		env.client.DeleteAdFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
			return &pkgapi.MessageResponse{}, nil
		}

		require.NoError(t, env.run("ads", "delete", "ad-1"))
		require.Len(t, env.client.DeleteAdCalls(), 1)
		assert.Equal(t, "ad-1", env.client.DeleteAdCalls()[0].Id)
		assert.Contains(t, env.out.String(), "✓ "+ads.MsgDeleted)
	})

	t.Run("declined", func(t *testing.T) {
		env := newTestEnv(t, "n")
		env.login(t, false)

		require.NoError(t, env.run("ads", "delete", "ad-1"))
		assert.Empty(t, env.client.DeleteAdCalls())
	})
}

func TestAdsSubmit_Edit(t *testing.T) {
	env := newTestEnv(t, "", "", "horizontal")
	env.login(t, false)
	env.client.GetAdFunc = func(ctx context.Context, id string) (*pkgapi.Ad, error) {
		ad := sampleAds()[0]
		return &ad, nil
	}
	env.client.SubmitAdFunc = func(ctx context.Context, req pkgapi.AdSubmitRequest) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{}, nil
	}

	require.NoError(t, env.run("ads", "submit", "ad-1"))

	require.Len(t, env.client.SubmitAdCalls(), 1)
	req := env.client.SubmitAdCalls()[0].Req
	assert.Equal(t, "ad-1", req.ID)
	assert.Equal(t, "https://shop.example.com/a", req.Link)
	assert.Nil(t, req.Banner)
	require.NotNil(t, req.IsVertical)
	assert.False(t, *req.IsVertical)

	out := env.out.String()
	assert.Contains(t, out, "Link [https://shop.example.com/a]: ")
	assert.Contains(t, out, "✓ "+ads.MsgSubmitted)
}

func TestAdsSubmit_FieldErrors(t *testing.T) {
	env := newTestEnv(t, "not a link", "", "sideways")
	env.login(t, false)

	err := env.run("ads", "submit")
	assert.ErrorIs(t, err, ErrReported)

	out := env.out.String()
	assert.Contains(t, out, "  Link: Please enter a valid URL")
	assert.Contains(t, out, "  Banner location: Banner location is required.")
	assert.Empty(t, env.client.SubmitAdCalls())
}

func TestAdsCompany(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, true)
	env.client.CompanyAdsFunc = func(ctx context.Context, id string) ([]pkgapi.Ad, error) {
		return sampleAds()[:1], nil
	}

	require.NoError(t, env.run("ads", "company", "c-7"))
	assert.Equal(t, "c-7", env.client.CompanyAdsCalls()[0].Id)
	assert.Contains(t, env.out.String(), "=== Ads of company c-7 ===")
}

func TestDraft_Lifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "https://shop.example.com/new", "", "vertical")
	env.client.SubmitAdFunc = func(ctx context.Context, req pkgapi.AdSubmitRequest) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{}, nil
	}

	require.NoError(t, env.run("draft", "new"))

	drafts, err := env.store.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	id := drafts[0].ID
	assert.Contains(t, env.out.String(), "Draft saved: "+id)

	env.out.Reset()
	require.NoError(t, env.run("draft", "list"))
	assert.Contains(t, env.out.String(), "Found 1 draft(s):")
	assert.Contains(t, env.out.String(), "Location: vertical")

	env.out.Reset()
	require.NoError(t, env.run("draft", "preview", id))
	assert.Contains(t, env.out.String(), `id="banner_vertical"`)

	// Отправка требует сессию
	err = env.run("draft", "submit", id)
	require.Error(t, err)
	assert.Empty(t, env.client.SubmitAdCalls())

	env.login(t, false)
	require.NoError(t, env.run("draft", "submit", id))

	require.Len(t, env.client.SubmitAdCalls(), 1)
	assert.Equal(t, "https://shop.example.com/new", env.client.SubmitAdCalls()[0].Req.Link)
	assert.Contains(t, env.out.String(), "✓ "+ads.MsgSubmitted)

	_, err = env.store.GetDraft(ctx, id)
	assert.ErrorIs(t, err, storage.ErrDraftNotFound)
}

func TestDraft_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "", "", "horizontal")
	draft := &storage.AdDraft{ID: "d-1", Link: "https://shop.example.com/old", IsVertical: boolPtr(true)}
	require.NoError(t, env.store.SaveDraft(ctx, draft))

	require.NoError(t, env.run("draft", "update", "d-1"))

	saved, err := env.store.GetDraft(ctx, "d-1")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/old", saved.Link)
	require.NotNil(t, saved.IsVertical)
	assert.False(t, *saved.IsVertical)

	require.NoError(t, env.run("draft", "delete", "d-1"))
	_, err = env.store.GetDraft(ctx, "d-1")
	assert.ErrorIs(t, err, storage.ErrDraftNotFound)
}
