package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/client/storage"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

// countingStore records which keys were read.
type countingStore struct {
	*kv.MemoryStore

	mu    sync.Mutex
	reads []string
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	c.reads = append(c.reads, key)
	c.mu.Unlock()
	return c.MemoryStore.Get(ctx, key)
}

func (c *countingStore) Reads() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.reads...)
}

func newRepos(t *testing.T) *storage.Repositories {
	t.Helper()
	repos, err := storage.NewRepositories(kv.NewMemoryStore(), "", logging.Discard())
	require.NoError(t, err)
	return repos
}

func seedUser(t *testing.T, repos *storage.Repositories, id string, login bool) *models.User {
	t.Helper()
	ctx := context.Background()
	u := &models.User{
		ID:        id,
		FullName:  "User " + id,
		Email:     id + "@example.org",
		Phone:     "5551234567",
		DOB:       "1990-06-15",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repos.Users.Create(ctx, u))
	if login {
		require.NoError(t, repos.Session.Set(ctx, id))
	}
	return u
}

type fakePresenter struct {
	calls []bool
}

func (p *fakePresenter) SetDark(dark bool) { p.calls = append(p.calls, dark) }

type fakeResetter struct {
	n int
}

func (r *fakeResetter) Reset() { r.n++ }
