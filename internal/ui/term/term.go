// Package term renders form feedback on a terminal.
package term

import (
	"fmt"
	"io"
	"sync"
)

// ErrorLine prints the form error on its own line. Clear hides it again;
// nothing is printed for an empty error area.
type ErrorLine struct {
	mu      sync.Mutex
	w       io.Writer
	text    string
	visible bool
}

func NewErrorLine(w io.Writer) *ErrorLine {
	return &ErrorLine{w: w}
}

func (e *ErrorLine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.text = ""
	e.visible = false
}

func (e *ErrorLine) Show(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.text = msg
	e.visible = true
	fmt.Fprintf(e.w, "erro: %s\n", msg)
}

func (e *ErrorLine) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

func (e *ErrorLine) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

type Notice struct {
	w io.Writer
}

func NewNotice(w io.Writer) *Notice {
	return &Notice{w: w}
}

func (n *Notice) Notify(msg string) {
	fmt.Fprintln(n.w, msg)
}
