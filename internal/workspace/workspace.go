package workspace

import (
	"context"

	"go.uber.org/zap"
)

// Workspace is the aggregate session state: the current expression text,
// the named-expression store and the reduction history. The current
// expression and the history are session-local; only the library is
// durable.
type Workspace struct {
	Current    string
	store      *Store
	history    *History
	controller *Controller
}

// New builds a workspace around store and oracle.
func New(store *Store, oracle Oracle, logger *zap.Logger) *Workspace {
	return &Workspace{
		store:      store,
		history:    NewHistory(),
		controller: NewController(oracle, logger),
	}
}

// Store exposes the named-expression store.
func (w *Workspace) Store() *Store {
	return w.store
}

// History exposes the reduction history.
func (w *Workspace) History() *History {
	return w.history
}

// Reduce performs one reduction attempt against the current expression and
// commits on progress: the step is appended to the history and the current
// expression becomes the candidate. NoProgress and failure leave everything
// untouched.
func (w *Workspace) Reduce() (Outcome, error) {
	out, err := w.controller.Step(w.Current, w.store.Library())
	if err != nil {
		return Outcome{}, err
	}
	if out.Kind == Progressed {
		w.history.Append(out.From, out.To)
		w.Current = out.To
	}
	return out, nil
}

// ApplyEntry loads the named library body into the current expression.
func (w *Workspace) ApplyEntry(name string) bool {
	body, ok := w.store.Library().Get(name)
	if !ok {
		return false
	}
	w.Current = body
	return true
}

// SaveCurrent stores the current expression under name.
func (w *Workspace) SaveCurrent(ctx context.Context, name string) error {
	return w.store.Save(ctx, name, w.Current)
}

// ClearHistory empties the reduction history.
func (w *Workspace) ClearHistory() {
	w.history.Clear()
}
