package core_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func TestStore_AddAndList(t *testing.T) {
	store := core.NewStore()

	n1, err := store.Add("Test 1", "argh")
	require.NoError(t, err)
	assert.Equal(t, core.Note{ID: 1, Title: "Test 1", Text: "argh"}, n1)

	n2, err := store.Add("Test 2", "argh")
	require.NoError(t, err)
	assert.Equal(t, 2, n2.ID)

	assert.Equal(t, []core.Note{n2, n1}, store.ListAll())
	assert.Equal(t, 2, store.Len())
}

func TestStore_AddRejectsInvalid(t *testing.T) {
	store := core.NewStore()

	_, err := store.Add("ab", "x")
	assert.ErrorIs(t, err, core.ErrTitleTooShort)

	_, err = store.Add(strings.Repeat("t", 51), "")
	assert.ErrorIs(t, err, core.ErrTitleTooLong)

	_, err = store.Add("Valid", strings.Repeat("x", 151))
	assert.ErrorIs(t, err, core.ErrTextTooLong)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.ListAll())
}

func TestStore_Edit(t *testing.T) {
	store := core.NewStore()
	n, err := store.Add("Groceries", "milk")
	require.NoError(t, err)

	t.Run("replaces fields in place", func(t *testing.T) {
		require.NoError(t, store.Edit(n.ID, "Shopping", "milk, eggs"))

		got, err := store.Get(n.ID)
		require.NoError(t, err)
		assert.Equal(t, core.Note{ID: n.ID, Title: "Shopping", Text: "milk, eggs"}, got)
	})

	t.Run("invalid fields leave note untouched", func(t *testing.T) {
		want := core.Note{ID: n.ID, Title: "Shopping", Text: "milk, eggs"}

		tests := []struct {
			name  string
			title string
			text  string
			err   error
		}{
			{"short title", "no", "", core.ErrTitleTooShort},
			{"long title", strings.Repeat("t", core.TitleMaxLen+1), "changed", core.ErrTitleTooLong},
			{"long text", "Changed", strings.Repeat("x", core.TextMaxLen+1), core.ErrTextTooLong},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := store.Edit(n.ID, tt.title, tt.text)
				assert.True(t, errors.Is(err, tt.err), "got %v, want %v", err, tt.err)

				got, err := store.Get(n.ID)
				require.NoError(t, err)
				assert.Equal(t, want, got)
				assert.Equal(t, []core.Note{want}, store.ListAll())
			})
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		before := store.ListAll()
		err := store.Edit(99, "Whatever", "")
		assert.ErrorIs(t, err, core.ErrNotFound)
		assert.Equal(t, before, store.ListAll())
	})

	t.Run("validation is checked before lookup", func(t *testing.T) {
		err := store.Edit(99, "x", "")
		assert.ErrorIs(t, err, core.ErrTitleTooShort)
	})
}

func TestStore_Remove(t *testing.T) {
	store := core.NewStore()
	n, err := store.Add("Test 1", "argh")
	require.NoError(t, err)

	require.NoError(t, store.Remove(n.ID))
	assert.Empty(t, store.ListAll())

	_, err = store.Get(n.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = store.Remove(n.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestStore_RemoveKeepsOrder(t *testing.T) {
	store := core.NewStore()
	for _, title := range []string{"one", "two", "three"} {
		_, err := store.Add(title, "")
		require.NoError(t, err)
	}

	require.NoError(t, store.Remove(2))

	var titles []string
	for _, n := range store.ListAll() {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"three", "one"}, titles)
}

func TestStore_IDs(t *testing.T) {
	t.Run("monotonic ids are never reused", func(t *testing.T) {
		store := core.NewStore()
		for i := 0; i < 3; i++ {
			_, err := store.Add("note", "")
			require.NoError(t, err)
		}
		require.NoError(t, store.Remove(2))
		require.NoError(t, store.Remove(3))

		n, err := store.Add("again", "")
		require.NoError(t, err)
		assert.Equal(t, 4, n.ID)
	})

	t.Run("legacy ids collide after removal", func(t *testing.T) {
		store := core.NewStore(core.WithLegacyIDs(true))
		for i := 0; i < 3; i++ {
			_, err := store.Add("note", "")
			require.NoError(t, err)
		}
		require.NoError(t, store.Remove(2))

		n, err := store.Add("again", "")
		require.NoError(t, err)
		assert.Equal(t, 3, n.ID)

		// Both notes with id 3 are present; edit and remove hit the older one.
		require.NoError(t, store.Edit(3, "edited", ""))
		list := store.ListAll()
		require.Len(t, list, 3)
		assert.Equal(t, "again", list[0].Title)
		assert.Equal(t, "edited", list[1].Title)
	})
}

func TestStore_ListAllReturnsCopy(t *testing.T) {
	store := core.NewStore()
	_, err := store.Add("Test 1", "argh")
	require.NoError(t, err)

	list := store.ListAll()
	list[0].Title = "mutated"

	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Test 1", got.Title)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store := core.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Add("parallel", "")
		}()
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, n := range store.ListAll() {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
	assert.Len(t, seen, 50)
}
