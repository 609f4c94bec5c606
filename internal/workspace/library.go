// Package workspace holds the expression-workspace core: the named
// expression library and its store, single-pass name expansion, the
// reduction controller and the step history.
package workspace

// Entry is one named expression.
type Entry struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Library is an ordered association list of named expressions. Insertion
// order is observable: it fixes substitution precedence, so the
// representation is an explicit slice rather than a map.
type Library struct {
	entries []Entry
}

// NewLibrary builds a library from entries in the given order. Duplicate
// names collapse onto the first occurrence, keeping its position.
func NewLibrary(entries ...Entry) *Library {
	l := &Library{}
	for _, e := range entries {
		l.Set(e.Name, e.Body)
	}
	return l
}

func (l *Library) Len() int {
	return len(l.entries)
}

// Entries returns a copy in insertion order.
func (l *Library) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Get returns the body bound to name.
func (l *Library) Get(name string) (string, bool) {
	for _, e := range l.entries {
		if e.Name == name {
			return e.Body, true
		}
	}
	return "", false
}

// Set upserts name. An existing entry keeps its position; a new one is
// appended.
func (l *Library) Set(name, body string) {
	for i := range l.entries {
		if l.entries[i].Name == name {
			l.entries[i].Body = body
			return
		}
	}
	l.entries = append(l.entries, Entry{Name: name, Body: body})
}

// Delete removes name if present and reports whether anything changed.
func (l *Library) Delete(name string) bool {
	for i := range l.entries {
		if l.entries[i].Name == name {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the entry names in insertion order.
func (l *Library) Names() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Name
	}
	return out
}
