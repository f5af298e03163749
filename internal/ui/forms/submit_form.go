//go:build js && wasm

package forms

import (
	"context"
	"syscall/js"

	"github.com/greenaire/site/internal/ui/model"
	"github.com/greenaire/site/internal/ui/view"
)

// ContactBinding renders a ContactForm into a container element and feeds DOM
// events back into it.
type ContactBinding struct {
	Form *ContactForm

	container js.Value
	handlers  []js.Func
	gate      renderGate
	ctx       context.Context
	cancel    context.CancelFunc
}

// MountContactForm builds a ContactForm over relay, renders it into container
// and binds its events. Options are applied after the binding's own change hook,
// so callers should not pass WithOnChange.
func MountContactForm(container js.Value, relay Relay, opts ...Option) *ContactBinding {
	ctx, cancel := context.WithCancel(context.Background())
	b := &ContactBinding{container: container, ctx: ctx, cancel: cancel}
	all := append([]Option{WithOnChange(b.scheduleRender)}, opts...)
	b.Form = NewContactForm(relay, all...)
	b.render(b.Form.State())
	return b
}

// Close releases event handlers and detaches the controller so a late relay
// response cannot touch the page.
func (b *ContactBinding) Close() {
	b.gate.close()
	b.Form.Close()
	b.cancel()
	b.releaseHandlers()
}

func (b *ContactBinding) scheduleRender(st model.ContactState) {
	var fn js.Func
	fn = js.FuncOf(func(js.Value, []js.Value) any {
		fn.Release()
		if !b.gate.isClosed() {
			b.render(st)
		}
		return nil
	})
	js.Global().Call("setTimeout", fn, 0)
}

func (b *ContactBinding) render(st model.ContactState) {
	if !b.container.Truthy() || !b.gate.admit(st) {
		return
	}
	focus := captureFocusSnapshot()
	b.releaseHandlers()
	b.container.Set("innerHTML", view.ContactForm(st))
	b.bindEvents()
	restoreFocusSnapshot(focus)
}

func (b *ContactBinding) bindEvents() {
	form := b.container.Call("querySelector", "#"+view.ContactFormID)
	b.addHandler(form, "submit", func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		b.Form.Submit(b.ctx)
		return nil
	})

	forEachNode(b.container.Call("querySelectorAll", "[data-contact-field]"), func(node js.Value) {
		b.addHandler(node, "input", func(this js.Value, args []js.Value) any {
			b.Form.SetField(this.Get("name").String(), this.Get("value").String())
			return nil
		})
	})

	reset := b.container.Call("querySelector", "[data-contact-reset]")
	b.addHandler(reset, "click", func(js.Value, []js.Value) any {
		b.Form.ResetAfterSuccess()
		return nil
	})
}

func (b *ContactBinding) addHandler(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	b.handlers = append(b.handlers, fn)
}

func (b *ContactBinding) releaseHandlers() {
	for _, fn := range b.handlers {
		fn.Release()
	}
	b.handlers = b.handlers[:0]
}

func forEachNode(list js.Value, fn func(js.Value)) {
	if !list.Truthy() {
		return
	}
	length := list.Get("length").Int()
	for i := 0; i < length; i++ {
		fn(list.Index(i))
	}
}

type focusSnapshot struct {
	ID    string
	Start int
	End   int
}

func captureFocusSnapshot() focusSnapshot {
	active := js.Global().Get("document").Get("activeElement")
	if !active.Truthy() {
		return focusSnapshot{Start: -1, End: -1}
	}
	idValue := active.Get("id")
	if idValue.Type() != js.TypeString {
		return focusSnapshot{Start: -1, End: -1}
	}
	snap := focusSnapshot{ID: idValue.String(), Start: -1, End: -1}
	if start := active.Get("selectionStart"); start.Type() == js.TypeNumber {
		snap.Start = start.Int()
	}
	if end := active.Get("selectionEnd"); end.Type() == js.TypeNumber {
		snap.End = end.Int()
	}
	return snap
}

func restoreFocusSnapshot(snap focusSnapshot) {
	if snap.ID == "" {
		return
	}
	target := js.Global().Get("document").Call("getElementById", snap.ID)
	if !target.Truthy() {
		return
	}
	target.Call("focus")
	if snap.Start >= 0 && snap.End >= 0 {
		if setter := target.Get("setSelectionRange"); setter.Type() == js.TypeFunction {
			target.Call("setSelectionRange", snap.Start, snap.End)
		}
	}
}
