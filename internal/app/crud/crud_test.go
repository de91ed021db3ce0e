package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"greeting-api/internal/db/dbtest"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint64  `json:"id" gorm:"primaryKey"`
	Name *string `json:"name"`
	Size *int    `json:"size"`
}

func (w *widget) GetID() uint64 { return w.ID }

func mergeWidget(existing, patch *widget) {
	if patch.Name != nil {
		existing.Name = patch.Name
	}
	if patch.Size != nil {
		existing.Size = patch.Size
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	loads   int
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Load(_ context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	data, ok := f.entries[key]
	if ok {
		f.hits++
	}
	return data, ok
}

func (f *fakeCache) Store(_ context.Context, key string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = data
}

func (f *fakeCache) Invalidate(_ context.Context, keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.entries, k)
	}
}

func (f *fakeCache) InvalidatePrefix(_ context.Context, prefix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.entries {
		if strings.HasPrefix(k, prefix) {
			delete(f.entries, k)
		}
	}
}

func (f *fakeCache) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key]
	return ok
}

// racingRepo reports every id as existing but then fails to load it, as if a
// concurrent delete landed between the two round-trips.
type racingRepo struct {
	Repository[widget]
}

func (racingRepo) ExistsByID(context.Context, uint64) (bool, error) { return true, nil }

func (racingRepo) FindByID(context.Context, uint64) (*widget, error) { return nil, ErrNotFound }

type brokenRepo struct {
	Repository[widget]
}

var errStoreDown = errors.New("store down")

func (brokenRepo) FindAll(context.Context) ([]*widget, error) { return nil, errStoreDown }

func (brokenRepo) Save(context.Context, *widget) error { return errStoreDown }

// danglingRepo rejects every save as if a foreign key pointed at a missing row.
type danglingRepo struct {
	Repository[widget]
}

func (danglingRepo) ExistsByID(context.Context, uint64) (bool, error) { return true, nil }

func (danglingRepo) Save(context.Context, *widget) error {
	return fmt.Errorf("%w: FOREIGN KEY constraint failed", ErrInvalidReference)
}

func openWidgets(t *testing.T) (*gorm.DB, Repository[widget]) {
	t.Helper()
	db := dbtest.Open(t, &widget{})
	return db, NewRepository[widget](db)
}

func seedWidget(t *testing.T, repo Repository[widget], name string, size int) *widget {
	t.Helper()
	w := &widget{Name: strPtr(name), Size: intPtr(size)}
	require.NoError(t, repo.Save(context.Background(), w))
	require.NotZero(t, w.ID)
	return w
}
