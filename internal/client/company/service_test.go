package company

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/storage"
	"github.com/iudanet/adpanel/internal/client/storage/boltdb"
	"github.com/iudanet/adpanel/internal/client/submit"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

type testEnv struct {
	client    *api.ClientAPIMock
	store     *boltdb.Storage
	notifier  *submit.NotifierMock
	navigator *submit.NavigatorMock
	service   *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "company.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	env := &testEnv{
		client: &api.ClientAPIMock{
			ListCompaniesFunc: func(ctx context.Context) ([]pkgapi.Company, error) {
				return sampleCompanies(), nil
			},
		},
		store: store,
		notifier: &submit.NotifierMock{
			SuccessFunc: func(msg string) {},
			ErrorFunc:   func(msg string) {},
		},
		navigator: &submit.NavigatorMock{NavigateFunc: func(route string) {}},
	}
	env.service = NewService(env.client, store, submit.New(env.notifier, env.navigator, nil))
	return env
}

func sampleCompanies() []pkgapi.Company {
	return []pkgapi.Company{
		{ID: "c1", Name: "Acme", Email: "acme@example.com", AdsCount: 3},
		{ID: "c2", Name: "Globex", Email: "globex@example.com", AdsCount: 1, Blocked: true},
		{ID: "c3", Name: "Initech", Email: "initech@example.com"},
	}
}

func companyIDs(companies []pkgapi.Company) []string {
	out := make([]string, 0, len(companies))
	for _, c := range companies {
		out = append(out, c.ID)
	}
	return out
}

// TestRemove проверяет удаление ровно одной компании одним запросом DELETE
func TestRemove(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.client.RemoveCompanyFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{Message: "Company removed"}, nil
	}

	_, err := env.service.List(ctx)
	require.NoError(t, err)

	require.NoError(t, env.service.Remove(ctx, "c2"))

	require.Len(t, env.client.RemoveCompanyCalls(), 1)
	assert.Equal(t, "c2", env.client.RemoveCompanyCalls()[0].Id)
	assert.Equal(t, []string{"c1", "c3"}, companyIDs(env.service.Items()))
	assert.Equal(t, "Company removed", env.notifier.SuccessCalls()[0].Msg)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3"}, companyIDs(cached))
}

func TestRemove_Error(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.client.RemoveCompanyFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
		return nil, &api.Error{StatusCode: http.StatusInternalServerError}
	}
	_, err := env.service.List(ctx)
	require.NoError(t, err)

	assert.Error(t, env.service.Remove(ctx, "c1"))
	assert.Equal(t, []string{"c1", "c2", "c3"}, companyIDs(env.service.Items()))
	assert.Equal(t, submit.MsgServerError, env.notifier.ErrorCalls()[0].Msg)
}

func TestToggleBlock(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantBlocked bool
		wantBlock   int
		wantUnblock int
	}{
		{name: "block active company", id: "c1", wantBlocked: true, wantBlock: 1},
		{name: "unblock blocked company", id: "c2", wantBlocked: false, wantUnblock: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			env := newTestEnv(t)
			ok := func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
				return &pkgapi.MessageResponse{Message: "done"}, nil
			}
			env.client.BlockCompanyFunc = ok
			env.client.UnblockCompanyFunc = ok

			// Список загружается с сервера, если кеша нет
			blocked, err := env.service.ToggleBlock(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBlocked, blocked)
			assert.Len(t, env.client.ListCompaniesCalls(), 1)
			assert.Len(t, env.client.BlockCompanyCalls(), tt.wantBlock)
			assert.Len(t, env.client.UnblockCompanyCalls(), tt.wantUnblock)

			items := env.service.Items()
			assert.Equal(t, []string{"c1", "c2", "c3"}, companyIDs(items))
			for _, c := range items {
				if c.ID == tt.id {
					assert.Equal(t, tt.wantBlocked, c.Blocked)
				}
			}
		})
	}
}

// TestToggleBlock_StaleCache проверяет, что состояние берется с сервера, а не из кеша
func TestToggleBlock_StaleCache(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	stale := sampleCompanies()
	stale[1].Blocked = false
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionCompanies, stale))
	env.client.UnblockCompanyFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
		return &pkgapi.MessageResponse{Message: "Company unblocked"}, nil
	}

	blocked, err := env.service.ToggleBlock(ctx, "c2")
	require.NoError(t, err)
	assert.False(t, blocked)
	assert.Len(t, env.client.ListCompaniesCalls(), 1)
	assert.Empty(t, env.client.BlockCompanyCalls())
	require.Len(t, env.client.UnblockCompanyCalls(), 1)
	assert.Equal(t, "c2", env.client.UnblockCompanyCalls()[0].Id)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.False(t, cached[1].Blocked)
}

func TestToggleBlock_ErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.client.BlockCompanyFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
		return nil, &api.Error{StatusCode: http.StatusBadRequest, Message: "Cannot block admin"}
	}

	blocked, err := env.service.ToggleBlock(ctx, "c1")
	assert.Error(t, err)
	assert.False(t, blocked)
	assert.Len(t, env.client.ListCompaniesCalls(), 1)
	assert.Equal(t, "Cannot block admin", env.notifier.ErrorCalls()[0].Msg)

	c, _ := env.service.list.Get("c1")
	assert.False(t, c.Blocked)
}

func TestToggleBlock_ListError(t *testing.T) {
	env := newTestEnv(t)
	env.client.ListCompaniesFunc = func(ctx context.Context) ([]pkgapi.Company, error) {
		return nil, &api.Error{StatusCode: http.StatusInternalServerError}
	}

	_, err := env.service.ToggleBlock(context.Background(), "c1")
	assert.Error(t, err)
	assert.Empty(t, env.client.BlockCompanyCalls())
	assert.Empty(t, env.client.UnblockCompanyCalls())
}

// TestSetBlocked проверяет явную блокировку независимо от локального состояния
func TestSetBlocked(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		blocked     bool
		wantBlock   int
		wantUnblock int
	}{
		{name: "block", id: "c1", blocked: true, wantBlock: 1},
		{name: "block already blocked", id: "c2", blocked: true, wantBlock: 1},
		{name: "unblock", id: "c2", blocked: false, wantUnblock: 1},
		{name: "unblock active", id: "c3", blocked: false, wantUnblock: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			env := newTestEnv(t)
			require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionCompanies, sampleCompanies()))
			ok := func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
				return &pkgapi.MessageResponse{Message: "done"}, nil
			}
			env.client.BlockCompanyFunc = ok
			env.client.UnblockCompanyFunc = ok

			require.NoError(t, env.service.SetBlocked(ctx, tt.id, tt.blocked))
			assert.Len(t, env.client.BlockCompanyCalls(), tt.wantBlock)
			assert.Len(t, env.client.UnblockCompanyCalls(), tt.wantUnblock)
			assert.Empty(t, env.client.ListCompaniesCalls())
			assert.Equal(t, "done", env.notifier.SuccessCalls()[0].Msg)

			c, found := env.service.list.Get(tt.id)
			require.True(t, found)
			assert.Equal(t, tt.blocked, c.Blocked)
		})
	}
}

func TestSetBlocked_Error(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.SaveCollection(ctx, storage.CollectionCompanies, sampleCompanies()))
	env.client.UnblockCompanyFunc = func(ctx context.Context, id string) (*pkgapi.MessageResponse, error) {
		return nil, &api.Error{StatusCode: http.StatusInternalServerError}
	}

	assert.Error(t, env.service.SetBlocked(ctx, "c2", false))
	assert.Equal(t, submit.MsgServerError, env.notifier.ErrorCalls()[0].Msg)

	cached, _, err := env.service.Cached(ctx)
	require.NoError(t, err)
	assert.True(t, cached[1].Blocked)
}

func TestToggleBlock_Unknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.ToggleBlock(context.Background(), "nope")
	assert.Error(t, err)
	assert.Empty(t, env.client.BlockCompanyCalls())
}
