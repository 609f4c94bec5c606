package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lambdapad/lambdapad/internal/workspace"
)

func TestWriteHistory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sub", "history.json")
	steps := []workspace.Step{
		{ID: "1", From: "(λx.x) y", To: "y"},
	}
	require.NoError(t, writeHistory(path, steps))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var exported historyExport
	require.NoError(t, json.Unmarshal(data, &exported))
	require.Equal(t, steps, exported.Steps)
	require.False(t, exported.ExportedAt.IsZero())

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "tmp file renamed away")
}
