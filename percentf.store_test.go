package percentf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory builds a fresh store for the shared conformance tests.
type storeFactory func(t *testing.T) PatternStore

func runPatternStoreTests(t *testing.T, newStore storeFactory) {
	ctx := context.Background()

	t.Run("get missing pattern", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		_, err := store.Get(ctx, "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgPatternNotFound)
	})

	t.Run("save and get round trip", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		p := &Pattern{
			Name:        "greeting",
			Format:      "Hello %{user}s!",
			Marker:      "%",
			Description: "standard greeting",
		}
		require.NoError(t, store.Save(ctx, p))
		assert.False(t, p.CreatedAt.IsZero())
		assert.False(t, p.UpdatedAt.IsZero())

		got, err := store.Get(ctx, "greeting")
		require.NoError(t, err)
		assert.Equal(t, p.Name, got.Name)
		assert.Equal(t, p.Format, got.Format)
		assert.Equal(t, p.Marker, got.Marker)
		assert.Equal(t, p.Description, got.Description)
	})

	t.Run("save preserves creation time on overwrite", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		first := &Pattern{Name: "p", Format: "v1 %s"}
		require.NoError(t, store.Save(ctx, first))

		second := &Pattern{Name: "p", Format: "v2 %s"}
		require.NoError(t, store.Save(ctx, second))
		assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())

		got, err := store.Get(ctx, "p")
		require.NoError(t, err)
		assert.Equal(t, "v2 %s", got.Format)
	})

	t.Run("save rejects incomplete patterns", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		for _, p := range []*Pattern{
			nil,
			{Name: "", Format: "x"},
			{Name: "x", Format: ""},
		} {
			err := store.Save(ctx, p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrMsgPatternInvalid)
		}
	})

	t.Run("list returns sorted names", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		for _, name := range []string{"zeta", "alpha", "mid"} {
			require.NoError(t, store.Save(ctx, &Pattern{Name: name, Format: "f"}))
		}

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		require.NoError(t, store.Save(ctx, &Pattern{Name: "gone", Format: "f"}))
		require.NoError(t, store.Delete(ctx, "gone"))

		_, err := store.Get(ctx, "gone")
		require.Error(t, err)

		err = store.Delete(ctx, "gone")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgPatternNotFound)
	})

	t.Run("operations after close fail", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Close())

		_, err := store.Get(ctx, "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgStoreClosed)

		err = store.Save(ctx, &Pattern{Name: "x", Format: "f"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgStoreClosed)
	})
}

func TestMemoryPatternStore(t *testing.T) {
	runPatternStoreTests(t, func(t *testing.T) PatternStore {
		return NewMemoryPatternStore()
	})
}

func TestFilesystemPatternStore(t *testing.T) {
	runPatternStoreTests(t, func(t *testing.T) PatternStore {
		store, err := NewFilesystemPatternStore(t.TempDir())
		require.NoError(t, err)
		return store
	})
}

func TestFilesystemPatternStore_RejectsUnsafeNames(t *testing.T) {
	ctx := context.Background()
	store, err := NewFilesystemPatternStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	for _, name := range []string{
		"../escape",
		"nested/path",
		`back\slash`,
		".hidden",
	} {
		err := store.Save(ctx, &Pattern{Name: name, Format: "f"})
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), ErrMsgPatternNameUnsafe)

		_, err = store.Get(ctx, name)
		require.Error(t, err, name)
	}
}

func TestMemoryPatternStore_CanceledContext(t *testing.T) {
	store := NewMemoryPatternStore()
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
