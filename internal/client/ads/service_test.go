package ads

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/storage"
	"github.com/iudanet/adpanel/internal/client/storage/boltdb"
	"github.com/iudanet/adpanel/internal/client/submit"
	"github.com/iudanet/adpanel/internal/validation"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

// pngHeader сигнатура PNG, достаточная для определения типа
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type testEnv struct {
	client    *api.ClientAPIMock
	store     *boltdb.Storage
	notifier  *submit.NotifierMock
	navigator *submit.NavigatorMock
	service   *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "ads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	env := &testEnv{
		client: &api.ClientAPIMock{},
		store:  store,
		notifier: &submit.NotifierMock{
			SuccessFunc: func(msg string) {},
			ErrorFunc:   func(msg string) {},
		},
		navigator: &submit.NavigatorMock{NavigateFunc: func(route string) {}},
	}
	flow := submit.New(env.notifier, env.navigator, nil)
	env.service = NewService(env.client, store, store, flow)
	return env
}

func boolPtr(b bool) *bool { return &b }

func sampleAds() []pkgapi.Ad {
	return []pkgapi.Ad{
		{ID: "a1", Link: "https://one.io", IsShown: true, IsVertical: boolPtr(true), Views: pkgapi.Views{TotalViews: 10, TodayViews: 2}},
		{ID: "a2", Link: "https://two.io", IsShown: false, IsVertical: boolPtr(false), Views: pkgapi.Views{TotalViews: 5, TodayViews: 1}},
		{ID: "a3", Link: "https://three.io", IsShown: true},
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestList_ReplacesAndCaches(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return sampleAds(), nil
	}

	ads, err := env.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ads, 3)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleAds(), cached)
}

func TestList_SessionExpired(t *testing.T) {
	env := newTestEnv(t)
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return nil, &api.Error{StatusCode: http.StatusForbidden}
	}

	_, err := env.service.List(context.Background())
	assert.ErrorIs(t, err, api.ErrSessionExpired)
	require.Len(t, env.navigator.NavigateCalls(), 1)
	assert.Equal(t, submit.RouteLogin, env.navigator.NavigateCalls()[0].Route)
}

// TestToggleShown_RevertOnError проверяет оптимистичное переключение и откат
func TestToggleShown_RevertOnError(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return sampleAds(), nil
	}
	_, err := env.service.List(ctx)
	require.NoError(t, err)

	env.client.SubmitAdFunc = func(ctx context.Context, req pkgapi.AdSubmitRequest) (*pkgapi.MessageResponse, error) {
		// Локальное состояние уже изменено до ответа сервера
		ad, ok := env.service.list.Get("a2")
		require.True(t, ok)
		assert.True(t, ad.IsShown)
		return nil, errors.New("connection reset")
	}

	shown, err := env.service.ToggleShown(ctx, "a2")
	assert.Error(t, err)
	assert.False(t, shown)

	ad, ok := env.service.list.Get("a2")
	require.True(t, ok)
	assert.False(t, ad.IsShown)

	require.Len(t, env.client.SubmitAdCalls(), 1)
	req := env.client.SubmitAdCalls()[0].Req
	assert.Equal(t, "a2", req.ID)
	require.NotNil(t, req.IsShown)
	assert.True(t, *req.IsShown)
	assert.Nil(t, req.Banner)

	require.Len(t, env.notifier.ErrorCalls(), 1)
	assert.Equal(t, MsgToggleFailed, env.notifier.ErrorCalls()[0].Msg)

	// Кеш не содержит неподтвержденного значения
	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.False(t, cached[1].IsShown)
}

// TestToggleShown_StaleCache проверяет, что новое значение вычисляется по серверному списку
func TestToggleShown_StaleCache(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	stale := sampleAds()
	stale[0].IsShown = false
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionAds, stale))
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return sampleAds(), nil
	}
	env.client.SubmitAdFunc = func(ctx context.Context, req pkgapi.AdSubmitRequest) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{}, nil
	}

	shown, err := env.service.ToggleShown(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, shown)
	assert.Len(t, env.client.ListAdsCalls(), 1)

	require.Len(t, env.client.SubmitAdCalls(), 1)
	req := env.client.SubmitAdCalls()[0].Req
	require.NotNil(t, req.IsShown)
	assert.False(t, *req.IsShown)

	items := env.service.Items()
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.False(t, items[0].IsShown)
	assert.True(t, items[2].IsShown)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.False(t, cached[0].IsShown)
}

func TestToggleShown_ListError(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionAds, sampleAds()))
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return nil, errors.New("connection refused")
	}

	_, err := env.service.ToggleShown(ctx, "a1")
	assert.Error(t, err)
	assert.Empty(t, env.client.SubmitAdCalls())
}

func TestToggleShown_UnknownAd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.client.ListAdsFunc = func(ctx context.Context) ([]pkgapi.Ad, error) {
		return sampleAds(), nil
	}

	_, err := env.service.ToggleShown(ctx, "missing")
	assert.Error(t, err)
	assert.Empty(t, env.client.SubmitAdCalls())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionAds, sampleAds()))
	env.client.DeleteAdFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{}, nil
	}

	require.NoError(t, env.service.Delete(ctx, "a2"))

	require.Len(t, env.client.DeleteAdCalls(), 1)
	assert.Equal(t, "a2", env.client.DeleteAdCalls()[0].Id)
	require.Len(t, env.notifier.SuccessCalls(), 1)
	assert.Equal(t, MsgDeleted, env.notifier.SuccessCalls()[0].Msg)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 2)
	assert.Equal(t, "a1", cached[0].ID)
	assert.Equal(t, "a3", cached[1].ID)
}

func TestDelete_ServerError(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionAds, sampleAds()))
	env.client.DeleteAdFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
		return nil, &api.Error{StatusCode: http.StatusNotFound, Message: "Ad not found"}
	}

	assert.Error(t, env.service.Delete(ctx, "a2"))
	require.Len(t, env.notifier.ErrorCalls(), 1)
	assert.Equal(t, "Ad not found", env.notifier.ErrorCalls()[0].Msg)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 3)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionAds, sampleAds()))
	env.client.SubmitAdFunc = func(ctx context.Context, req pkgapi.AdSubmitRequest) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{}, nil
	}

	path := writeFile(t, "banner.png", pngHeader)
	err := env.service.Submit(ctx, Form{
		ID:         "a3",
		Link:       "https://new.io/landing",
		IsVertical: boolPtr(false),
		BannerPath: path,
	})
	require.NoError(t, err)

	require.Len(t, env.client.SubmitAdCalls(), 1)
	req := env.client.SubmitAdCalls()[0].Req
	assert.Equal(t, "a3", req.ID)
	assert.Equal(t, "https://new.io/landing", req.Link)
	require.NotNil(t, req.Banner)
	assert.Equal(t, "image/png", req.Banner.Type)
	assert.Contains(t, req.Banner.Base64, "data:image/png;base64,")

	require.Len(t, env.navigator.NavigateCalls(), 1)
	assert.Equal(t, submit.RouteDashboard, env.navigator.NavigateCalls()[0].Route)
	assert.Equal(t, MsgSubmitted, env.notifier.SuccessCalls()[0].Msg)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://new.io/landing", cached[2].Link)
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		form   Form
		banner []byte
		want   validation.Errors
	}{
		{
			name: "blank link and no orientation",
			form: Form{},
			want: validation.Errors{
				validation.FieldLink:              validation.MsgLinkRequired,
				validation.FieldBannerOrientation: validation.MsgOrientationRequired,
			},
		},
		{
			name: "invalid link",
			form: Form{Link: "example.com", IsVertical: boolPtr(true)},
			want: validation.Errors{validation.FieldLink: validation.MsgInvalidLink},
		},
		{
			name:   "not an image",
			form:   Form{Link: "https://a.io", IsVertical: boolPtr(true)},
			banner: []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"),
			want:   validation.Errors{validation.FieldBanner: validation.MsgInvalidImage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			form := tt.form
			if tt.banner != nil {
				form.BannerPath = writeFile(t, "banner.bin", tt.banner)
			}

			err := env.service.Submit(context.Background(), form)

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.want, errs)
			assert.Empty(t, env.client.SubmitAdCalls())
		})
	}
}

func TestSubmit_MissingBannerFile(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.Submit(context.Background(), Form{
		Link:       "https://a.io",
		IsVertical: boolPtr(true),
		BannerPath: filepath.Join(t.TempDir(), "nope.png"),
	})
	assert.Error(t, err)
	assert.Empty(t, env.client.SubmitAdCalls())
}

func TestListByCompany_NotCached(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionAds, sampleAds()))
	env.client.CompanyAdsFunc = func(ctx context.Context, id string) ([]pkgapi.Ad, error) {
		return []pkgapi.Ad{{ID: "x1"}, {ID: "x2"}}, nil
	}
	env.client.DeleteAdFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{}, nil
	}

	ads, err := env.service.ListByCompany(ctx, "c-9")
	require.NoError(t, err)
	assert.Len(t, ads, 2)
	assert.Equal(t, "c-9", env.client.CompanyAdsCalls()[0].Id)

	require.NoError(t, env.service.Delete(ctx, "x1"))
	items := env.service.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "x2", items[0].ID)

	// Кеш своих баннеров не затронут
	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 3)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionAds, sampleAds()))
	env.client.ResetAdsFunc = func(ctx context.Context) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{Message: "Views reset"}, nil
	}

	require.NoError(t, env.service.Reset(ctx))
	assert.Equal(t, "Views reset", env.notifier.SuccessCalls()[0].Msg)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	for _, ad := range cached {
		assert.Zero(t, ad.Views.TodayViews)
	}
	assert.Equal(t, int64(10), cached[0].Views.TotalViews)
}

func TestGet(t *testing.T) {
	env := newTestEnv(t)
	env.client.GetAdFunc = func(ctx context.Context, id string) (*pkgapi.Ad, error) {
		if id == "a1" {
			return &sampleAds()[0], nil
		}
		return nil, &api.Error{StatusCode: http.StatusNotFound, Message: "Ad not found"}
	}

	ad, err := env.service.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "https://one.io", ad.Link)

	_, err = env.service.Get(context.Background(), "zz")
	assert.Error(t, err)
	assert.Equal(t, "Ad not found", env.notifier.ErrorCalls()[0].Msg)
}
