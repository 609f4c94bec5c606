package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestWorkspace(oracle Oracle) *Workspace {
	return New(NewStore(newMemKV(), nil), oracle, nil)
}

func TestWorkspaceReduceCommitsProgress(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: map[string]string{"(λx.x) y": "y"}}
	ws := newTestWorkspace(oracle)
	ws.Current = "(λx.x) y"

	out, err := ws.Reduce()
	require.NoError(t, err)
	require.Equal(t, Progressed, out.Kind)
	require.Equal(t, "y", ws.Current)

	steps := ws.History().Steps()
	require.Len(t, steps, 1)
	require.Equal(t, "(λx.x) y", steps[0].From)
	require.Equal(t, "y", steps[0].To)
	require.NotEmpty(t, steps[0].ID)

	// Second attempt: the oracle echoes "y", so nothing moves.
	out, err = ws.Reduce()
	require.NoError(t, err)
	require.Equal(t, NoProgress, out.Kind)
	require.Equal(t, "y", ws.Current)
	require.Equal(t, 1, ws.History().Len())
}

func TestWorkspaceReduceFailureIsAtomic(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{err: errors.New("boom")}
	ws := newTestWorkspace(oracle)
	ws.Current = "λx"

	_, err := ws.Reduce()
	require.Error(t, err)
	require.Equal(t, "λx", ws.Current, "current expression untouched on failure")
	require.Zero(t, ws.History().Len())
}

func TestWorkspaceApplyEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ws := newTestWorkspace(&stubOracle{})
	require.NoError(t, ws.Store().Save(ctx, "id", "λx.x"))

	require.True(t, ws.ApplyEntry("id"))
	require.Equal(t, "λx.x", ws.Current)

	ws.Current = "untouched"
	require.False(t, ws.ApplyEntry("missing"))
	require.Equal(t, "untouched", ws.Current)
}

func TestWorkspaceSaveCurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ws := newTestWorkspace(&stubOracle{})
	ws.Current = "(λx.x) y"
	require.NoError(t, ws.SaveCurrent(ctx, "step0"))

	body, ok := ws.Store().Library().Get("step0")
	require.True(t, ok)
	require.Equal(t, "(λx.x) y", body)

	require.Error(t, ws.SaveCurrent(ctx, "  "))
}

func TestWorkspaceClearHistory(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: map[string]string{"a b": "b", "b": "c"}}
	ws := newTestWorkspace(oracle)
	ws.Current = "a b"

	for i := 0; i < 2; i++ {
		_, err := ws.Reduce()
		require.NoError(t, err)
	}
	require.Equal(t, 2, ws.History().Len())

	ws.ClearHistory()
	require.Zero(t, ws.History().Len())

	ws.ClearHistory()
	require.Zero(t, ws.History().Len(), "clear is unconditional and repeatable")
}

func TestWorkspaceHistoryOrderedOldestFirst(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: map[string]string{"a": "b", "b": "c", "c": "d"}}
	ws := newTestWorkspace(oracle)
	ws.Current = "a"

	for i := 0; i < 3; i++ {
		_, err := ws.Reduce()
		require.NoError(t, err)
	}
	steps := ws.History().Steps()
	require.Len(t, steps, 3)
	require.Equal(t, "a", steps[0].From)
	require.Equal(t, "b", steps[1].From)
	require.Equal(t, "c", steps[2].From)
	require.Equal(t, "d", ws.Current)
}
