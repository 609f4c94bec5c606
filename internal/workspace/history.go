package workspace

import "github.com/google/uuid"

// Step records one committed reduction, immutable once appended.
type Step struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

// History is the ordered, session-local record of reduction steps.
// Append-only except for a full clear.
type History struct {
	steps []Step
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Append records a step at the end and returns it with its assigned ID.
func (h *History) Append(from, to string) Step {
	step := Step{ID: uuid.NewString(), From: from, To: to}
	h.steps = append(h.steps, step)
	return step
}

// Clear empties the history unconditionally.
func (h *History) Clear() {
	h.steps = nil
}

func (h *History) Len() int {
	return len(h.steps)
}

// Steps returns a copy, oldest first.
func (h *History) Steps() []Step {
	out := make([]Step, len(h.steps))
	copy(out, h.steps)
	return out
}
