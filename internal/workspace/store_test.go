package workspace

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// memKV is an in-memory durable-store stand-in.
type memKV struct {
	records map[string]string
	sets    int
	setErr  error
	getErr  error
}

func newMemKV() *memKV {
	return &memKV{records: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.records[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.records[key] = value
	return nil
}

func TestStoreSaveValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := newMemKV()
	store := NewStore(kv, nil)

	var vErr *ValidationError
	err := store.Save(ctx, "", "x")
	require.Error(t, err)
	require.ErrorAs(t, err, &vErr)

	err = store.Save(ctx, "x", "")
	require.Error(t, err)
	require.ErrorAs(t, err, &vErr)

	err = store.Save(ctx, "   ", " \t ")
	require.Error(t, err)

	require.Zero(t, store.Library().Len(), "library unchanged after rejected saves")
	require.Zero(t, kv.sets, "nothing persisted after rejected saves")
}

func TestStoreSaveTrims(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewStore(newMemKV(), nil)
	require.NoError(t, store.Save(ctx, "  id  ", "  λx.x  "))
	body, ok := store.Library().Get("id")
	require.True(t, ok)
	require.Equal(t, "λx.x", body)
}

func TestStoreSaveThenDeleteRestores(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewStore(newMemKV(), nil)
	require.NoError(t, store.Save(ctx, "k", "λx.λy.x"))
	require.NoError(t, store.Save(ctx, "s", "λx.λy.λz.x z (y z)"))
	before := store.Entries()

	require.NoError(t, store.Save(ctx, "id", "λx.x"))
	store.Delete(ctx, "id")

	require.Equal(t, before, store.Entries(), "structural equality including order")
}

func TestStoreDeleteAbsentIsNoOp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := newMemKV()
	store := NewStore(kv, nil)
	require.NoError(t, store.Save(ctx, "id", "λx.x"))
	sets := kv.sets

	store.Delete(ctx, "missing")
	require.Equal(t, sets, kv.sets, "no persistence for a no-op delete")
	require.Equal(t, 1, store.Library().Len())
}

func TestStoreEmptyLibraryNeverWritten(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := newMemKV()
	store := NewStore(kv, nil)
	require.NoError(t, store.Save(ctx, "id", "λx.x"))
	persisted := kv.records[LibraryKey]
	require.NotEmpty(t, persisted)

	// Deleting the last entry leaves the previous record in place.
	store.Delete(ctx, "id")
	require.Zero(t, store.Library().Len())
	require.Equal(t, persisted, kv.records[LibraryKey])
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := newMemKV()
	store := NewStore(kv, nil)
	require.NoError(t, store.Save(ctx, "id", "λx.x"))
	require.NoError(t, store.Save(ctx, "k", "λx.λy.x"))
	require.NoError(t, store.Save(ctx, "omega", "(λx.x x) (λx.x x)"))

	// Simulated restart: a fresh store over the same records.
	reloaded := NewStore(kv, nil)
	reloaded.Load(ctx)
	require.Equal(t, store.Entries(), reloaded.Entries(), "identical pairs in identical order")
}

func TestStoreLoadCorruptRecordFallsBackEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := newMemKV()
	kv.records[LibraryKey] = "{not json"
	store := NewStore(kv, nil)
	store.Load(ctx)
	require.Zero(t, store.Library().Len())
}

func TestStoreLoadErrorFallsBackEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := newMemKV()
	kv.getErr = errors.New("disk gone")
	store := NewStore(kv, nil)
	store.Load(ctx)
	require.Zero(t, store.Library().Len())
}

func TestStoreSaveSurvivesPersistFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := newMemKV()
	kv.setErr = fmt.Errorf("disk full")
	store := NewStore(kv, nil)

	// Best-effort persistence: the in-memory mutation stands.
	require.NoError(t, store.Save(ctx, "id", "λx.x"))
	body, ok := store.Library().Get("id")
	require.True(t, ok)
	require.Equal(t, "λx.x", body)
}

func TestStoreNilKVIsInMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewStore(nil, nil)
	store.Load(ctx)
	require.NoError(t, store.Save(ctx, "id", "λx.x"))
	require.Equal(t, 1, store.Library().Len())
}
