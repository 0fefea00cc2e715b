package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/tutoring-api/internal/model"
)

func TestStoreInsert(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(courseSchema, testOptions(clock))

	t.Run("assigns id and timestamps", func(t *testing.T) {
		got := store.Insert(model.Course{Name: "Algebra", SemesterNumber: 1})

		assert.Equal(t, "course-1", got.ID)
		assert.Equal(t, clock.Now(), got.CreatedAt)
		assert.Equal(t, clock.Now(), got.UpdatedAt)

		stored, ok := store.Get(got.ID)
		require.True(t, ok)
		assert.Equal(t, got, stored)
	})

	t.Run("keeps caller id", func(t *testing.T) {
		got := store.Insert(model.Course{ID: "calc-1", Name: "Calculus"})
		assert.Equal(t, "calc-1", got.ID)
	})

	t.Run("same id replaces in place", func(t *testing.T) {
		store.Insert(model.Course{ID: "calc-1", Name: "Calculus II"})

		all := store.All()
		require.Len(t, all, 2)
		assert.Equal(t, "course-1", all[0].ID)
		assert.Equal(t, "Calculus II", all[1].Name)
	})
}

func TestStoreInsertionOrder(t *testing.T) {
	store := NewStore(courseSchema, testOptions(newFakeClock()))
	for _, name := range []string{"a", "b", "c", "d"} {
		store.Insert(model.Course{ID: name})
	}
	store.Delete("b")
	store.Insert(model.Course{ID: "e"})

	var ids []string
	for _, c := range store.All() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"a", "c", "d", "e"}, ids)
}

func TestStoreUpdate(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(courseSchema, testOptions(clock))
	created := store.Insert(model.Course{Name: "Physics", SemesterNumber: 2})

	clock.Advance(time.Minute)

	t.Run("merges and refreshes updatedAt", func(t *testing.T) {
		got, ok := store.Update(created.ID, model.CoursePatch{Name: ptr("Physics I")}.Apply)
		require.True(t, ok)

		want := created
		want.Name = "Physics I"
		want.UpdatedAt = clock.Now()
		assert.Equal(t, want, got)
	})

	t.Run("cannot move the key", func(t *testing.T) {
		got, ok := store.Update(created.ID, func(c model.Course) model.Course {
			c.ID = "elsewhere"
			c.CreatedAt = time.Time{}
			return c
		})
		require.True(t, ok)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.CreatedAt, got.CreatedAt)

		_, moved := store.Get("elsewhere")
		assert.False(t, moved)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok := store.Update("nope", model.CoursePatch{}.Apply)
		assert.False(t, ok)
	})
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(courseSchema, testOptions(newFakeClock()))
	created := store.Insert(model.Course{Name: "Chemistry"})

	assert.True(t, store.Delete(created.ID))
	assert.False(t, store.Delete(created.ID))
	assert.False(t, store.Delete("never-existed"))

	_, ok := store.Get(created.ID)
	assert.False(t, ok)
}

func TestStoreFilterAndDeleteWhere(t *testing.T) {
	store := NewStore(courseSchema, testOptions(newFakeClock()))
	for i, n := range []int{1, 2, 1, 3, 1} {
		store.Insert(model.Course{Name: string(rune('a' + i)), SemesterNumber: n})
	}
	first := func(c model.Course) bool { return c.SemesterNumber == 1 }

	assert.Len(t, store.Filter(first), 3)
	assert.NotNil(t, store.Filter(func(model.Course) bool { return false }))

	assert.Equal(t, 3, store.DeleteWhere(first))
	assert.Equal(t, 2, store.Len())
	assert.Empty(t, store.Filter(first))
}

func TestStoreConcurrentWrites(t *testing.T) {
	store := NewStore(courseSchema, Options{})

	const writers = 50
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := store.Insert(model.Course{Name: "x"})
			store.Update(c.ID, model.CoursePatch{SemesterNumber: ptr(2)}.Apply)
		}()
	}
	wg.Wait()

	all := store.All()
	require.Len(t, all, writers)
	for _, c := range all {
		assert.Equal(t, 2, c.SemesterNumber)
	}
}
