package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()

	created := store.Create("Acme")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Acme", created.CompanyName)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Acme", got.CompanyName)
}

func TestStoreGet_Unknown(t *testing.T) {
	store := NewStore()
	_, err := store.Get("nope")
	assert.ErrorContains(t, err, "not found")
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore()
	created := store.Create("Acme")

	updated, err := store.Update(created.ID, func(s *Session) {
		s.Analysis = "Acme builds robots"
		s.Mode = ModeResearch
		s.Founders = []string{"Jane Doe"}
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme builds robots", updated.Analysis)
	assert.Equal(t, ModeResearch, updated.Mode)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, got.Founders)
}

func TestStoreUpdate_Unknown(t *testing.T) {
	store := NewStore()
	_, err := store.Update("nope", func(s *Session) {})
	assert.ErrorContains(t, err, "not found")
}

func TestStoreGetReturnsCopy(t *testing.T) {
	store := NewStore()
	created := store.Create("Acme")

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	got.CompanyName = "Mutated"

	again, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", again.CompanyName)
}

func TestStoreDeleteAndLen(t *testing.T) {
	store := NewStore()
	a := store.Create("A")
	store.Create("B")
	assert.Equal(t, 2, store.Len())

	store.Delete(a.ID)
	assert.Equal(t, 1, store.Len())

	store.Delete("unknown")
	assert.Equal(t, 1, store.Len())
}
