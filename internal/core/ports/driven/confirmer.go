package driven

// Confirmer asks the user a yes/no question before a destructive action.
// The call is synchronous; cancelling is an ordinary false result.
type Confirmer interface {
	Confirm(title, message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(title, message string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(title, message string) bool {
	return f(title, message)
}
