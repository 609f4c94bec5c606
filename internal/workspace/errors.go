package workspace

// ValidationError reports invalid user input on a library save. The library
// is left untouched when one is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	// ErrEmptyName rejects a save whose name trims to nothing.
	ErrEmptyName = &ValidationError{msg: "name must not be empty"}
	// ErrEmptyBody rejects a save whose body trims to nothing.
	ErrEmptyBody = &ValidationError{msg: "expression body must not be empty"}
)
