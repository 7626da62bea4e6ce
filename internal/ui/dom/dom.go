//go:build js && wasm

package dom

import "syscall/js"

func document() js.Value {
	return js.Global().Get("document")
}

// ByID returns the element and whether the page has it.
func ByID(id string) (js.Value, bool) {
	el := document().Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}

// Value reads an input's current value; a missing input reads as "".
func Value(id string) string {
	el, ok := ByID(id)
	if !ok {
		return ""
	}
	return el.Get("value").String()
}

// ErrorBox is the page's error container.
type ErrorBox struct {
	el js.Value
}

func NewErrorBox(el js.Value) *ErrorBox {
	return &ErrorBox{el: el}
}

func (b *ErrorBox) Clear() {
	b.el.Get("style").Set("display", "none")
	b.el.Set("textContent", "")
}

func (b *ErrorBox) Show(msg string) {
	b.el.Set("textContent", msg)
	b.el.Get("style").Set("display", "block")
}

// Alert notifies through window.alert.
type Alert struct{}

func (Alert) Notify(msg string) {
	js.Global().Call("alert", msg)
}

// On registers fn for event on el. fn runs on its own goroutine so it may
// block on network calls; preventDefault is called first when asked.
func On(el js.Value, event string, preventDefault bool, fn func()) js.Func {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if preventDefault && len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go fn()
		return nil
	})
	el.Call("addEventListener", event, cb)
	return cb
}

// GlobalString reads a string set on window by the page, or "" when unset.
func GlobalString(name string) string {
	v := js.Global().Get(name)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
