package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lambdapad/lambdapad/internal/workspace"
)

type historyExport struct {
	ExportedAt time.Time        `json:"exported_at"`
	Steps      []workspace.Step `json:"steps"`
}

// exportHistoryCmd writes the session's reduction steps next to the
// database file as timestamped JSON.
func (a *App) exportHistoryCmd() tea.Cmd {
	steps := a.ws.History().Steps()
	dir := filepath.Dir(a.cfg.Database.Path)
	return func() tea.Msg {
		if len(steps) == 0 {
			return statusMsg("nothing to export")
		}
		path := filepath.Join(dir, fmt.Sprintf("history-%s.json", time.Now().UTC().Format("20060102-150405")))
		if err := writeHistory(path, steps); err != nil {
			return errMsg{err}
		}
		return statusMsg("exported " + path)
	}
}

func writeHistory(path string, steps []workspace.Step) error {
	data, err := json.MarshalIndent(historyExport{ExportedAt: time.Now().UTC(), Steps: steps}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
