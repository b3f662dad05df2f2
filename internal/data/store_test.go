package data

import (
	"testing"
	"time"

	"commodity-forecast/internal/simulate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStore_PutGet(t *testing.T) {
	store := NewResultStore(time.Minute)

	result := &simulate.Result{Summary: simulate.Summary{LastHistoricalYear: 2023}}
	id := store.Put(result)
	require.NotEmpty(t, id)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Same(t, result, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestResultStore_UniqueIDs(t *testing.T) {
	store := NewResultStore(time.Minute)

	a := store.Put(&simulate.Result{})
	b := store.Put(&simulate.Result{})
	assert.NotEqual(t, a, b)
}

func TestResultStore_Expiry(t *testing.T) {
	store := NewResultStore(10 * time.Millisecond)

	id := store.Put(&simulate.Result{})
	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(id)
	assert.False(t, ok)
}

func TestResultStore_Clear(t *testing.T) {
	store := NewResultStore(time.Minute)

	id := store.Put(&simulate.Result{})
	store.Clear()

	_, ok := store.Get(id)
	assert.False(t, ok)
}
