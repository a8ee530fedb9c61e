package organize

// Confirmer decides whether an existing destination file may be replaced
// during a move. Declining leaves both the source and destination files
// untouched.
type Confirmer interface {
	ConfirmOverwrite(path string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(path string) (bool, error)

func (f ConfirmerFunc) ConfirmOverwrite(path string) (bool, error) {
	return f(path)
}

// AcceptAll answers yes to every overwrite. Used by --force.
func AcceptAll() Confirmer {
	return ConfirmerFunc(func(string) (bool, error) { return true, nil })
}

// DeclineAll answers no to every overwrite. The safe default for
// non-interactive runs without --force.
func DeclineAll() Confirmer {
	return ConfirmerFunc(func(string) (bool, error) { return false, nil })
}
