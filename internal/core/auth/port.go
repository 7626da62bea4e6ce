// Package auth binds the signup and login forms to the auth endpoint.
package auth

// ErrorDisplay is the single error area owned by a form.
type ErrorDisplay interface {
	Clear()
	Show(msg string)
}

// Notifier shows a one-off message outside the error area.
type Notifier interface {
	Notify(msg string)
}
