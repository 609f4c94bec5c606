// Package tui is the terminal interface: a workspace view for editing and
// reducing the current expression, and a library view for managing named
// expressions.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lambdapad/lambdapad/internal/config"
	"github.com/lambdapad/lambdapad/internal/workspace"
)

// App ties together views. All workspace mutations happen inside Update, so
// every user-triggered operation runs to completion before the next one is
// accepted.
type App struct {
	ctx    context.Context
	cfg    config.Config
	ws     *workspace.Workspace
	logger *zap.Logger

	state      appState
	modal      modalState
	input      textinput.Model
	modalInput textinput.Model

	pendingName string // name captured by the first stage of the new-entry modal
	libCursor   int
	filter      string
	filtering   bool
	status      string
	width       int
	height      int
}

type appState string

const (
	viewWorkspace appState = "workspace"
	viewLibrary   appState = "library"
)

type modalState string

const (
	modalNone     modalState = ""
	modalSaveName modalState = "saveName"
	modalNewName  modalState = "newName"
	modalNewBody  modalState = "newBody"
)

// New builds the app around a prepared workspace.
func New(ctx context.Context, cfg config.Config, ws *workspace.Workspace, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	input := textinput.New()
	input.Prompt = "> "
	input.SetValue(ws.Current)
	input.Focus()

	modalInput := textinput.New()
	modalInput.Prompt = "> "

	return &App{
		ctx:        ctx,
		cfg:        cfg,
		ws:         ws,
		logger:     logger,
		state:      viewWorkspace,
		input:      input,
		modalInput: modalInput,
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch a.state {
		case viewLibrary:
			return a.handleLibraryKey(m)
		default:
			return a.handleWorkspaceKey(m)
		}
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.logger.Warn("background task failed", zap.Error(m))
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleWorkspaceKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "tab", "ctrl+l":
		a.state = viewLibrary
		a.status = ""
		return a, nil
	case "enter":
		a.reduce()
		return a, nil
	case "ctrl+s":
		a.modal = modalSaveName
		a.modalInput.SetValue("")
		a.modalInput.Focus()
		return a, nil
	case "ctrl+k":
		a.ws.ClearHistory()
		a.status = "history cleared"
		return a, nil
	case "ctrl+e":
		return a, a.exportHistoryCmd()
	}

	m = a.applyGlyph(m)
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	a.ws.Current = a.input.Value()
	return a, cmd
}

// reduce performs one reduction step and surfaces the outcome in the status
// slot. Only a failed or fruitless attempt leaves a message behind.
func (a *App) reduce() {
	out, err := a.ws.Reduce()
	if err != nil {
		a.status = "error: " + err.Error()
		return
	}
	if out.Kind == workspace.NoProgress {
		a.status = "no further reduction possible"
		return
	}
	a.status = ""
	a.input.SetValue(a.ws.Current)
	a.input.CursorEnd()
}

func (a *App) handleLibraryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filtering {
		switch m.String() {
		case "enter", "esc":
			if m.String() == "esc" {
				a.filter = ""
			}
			a.filtering = false
			a.modalInput.Blur()
			a.libCursor = 0
			return a, nil
		default:
			mg := a.applyGlyph(m)
			var cmd tea.Cmd
			a.modalInput, cmd = a.modalInput.Update(mg)
			a.filter = a.modalInput.Value()
			a.libCursor = 0
			return a, cmd
		}
	}

	entries := a.visibleEntries()
	switch m.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "tab", "esc":
		a.state = viewWorkspace
		a.status = ""
		return a, nil
	case "up", "k":
		if a.libCursor > 0 {
			a.libCursor--
		}
	case "down", "j":
		if a.libCursor < len(entries)-1 {
			a.libCursor++
		}
	case "/":
		a.filtering = true
		a.modalInput.SetValue(a.filter)
		a.modalInput.Focus()
	case "enter":
		if len(entries) == 0 {
			return a, nil
		}
		name := entries[a.libCursor].Name
		if a.ws.ApplyEntry(name) {
			a.input.SetValue(a.ws.Current)
			a.input.CursorEnd()
			a.state = viewWorkspace
			a.status = "loaded " + name
		}
	case "d", "backspace", "delete":
		if len(entries) == 0 {
			return a, nil
		}
		name := entries[a.libCursor].Name
		a.ws.Store().Delete(a.ctx, name)
		if a.libCursor >= len(a.visibleEntries()) && a.libCursor > 0 {
			a.libCursor--
		}
		a.status = "deleted " + name
	case "n":
		a.modal = modalNewName
		a.pendingName = ""
		a.modalInput.SetValue("")
		a.modalInput.Focus()
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.closeModal()
		return a, nil
	case tea.KeyEnter:
		text := strings.TrimSpace(a.modalInput.Value())
		switch a.modal {
		case modalSaveName:
			a.closeModal()
			a.saveCurrent(text)
		case modalNewName:
			if text == "" {
				a.status = "enter a name"
				return a, nil
			}
			a.pendingName = text
			a.modal = modalNewBody
			a.modalInput.SetValue("")
		case modalNewBody:
			name := a.pendingName
			a.closeModal()
			a.saveEntry(name, text)
		}
		return a, nil
	}
	mg := a.applyGlyph(m)
	var cmd tea.Cmd
	a.modalInput, cmd = a.modalInput.Update(mg)
	return a, cmd
}

func (a *App) closeModal() {
	a.modal = modalNone
	a.pendingName = ""
	a.modalInput.SetValue("")
	a.modalInput.Blur()
}

func (a *App) saveCurrent(name string) {
	if err := a.ws.SaveCurrent(a.ctx, name); err != nil {
		a.status = validationMessage(err)
		return
	}
	a.status = "saved " + strings.TrimSpace(name)
}

func (a *App) saveEntry(name, body string) {
	if err := a.ws.Store().Save(a.ctx, name, body); err != nil {
		a.status = validationMessage(err)
		return
	}
	a.status = "saved " + strings.TrimSpace(name)
}

func validationMessage(err error) string {
	var vErr *workspace.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return "error: " + err.Error()
}

// applyGlyph rewrites typed backslashes to λ when configured.
func (a *App) applyGlyph(m tea.KeyMsg) tea.KeyMsg {
	if a.cfg.UI.Glyph != "lambda" || m.Type != tea.KeyRunes {
		return m
	}
	runes := make([]rune, len(m.Runes))
	for i, r := range m.Runes {
		if r == '\\' {
			r = 'λ'
		}
		runes[i] = r
	}
	m.Runes = runes
	return m
}

// visibleEntries applies the library filter, nearest match first.
func (a *App) visibleEntries() []workspace.Entry {
	entries := a.ws.Store().Entries()
	if a.filter == "" {
		return entries
	}
	return rankEntries(entries, a.filter)
}

// messages
type statusMsg string

type errMsg struct{ error }
