//go:build js && wasm

package wasm

import "syscall/js"

// windowViewport implements nav.Viewport over window scroll events.
type windowViewport struct{}

func (windowViewport) OnScroll(fn func(offsetY float64)) func() {
	window := js.Global()
	handler := js.FuncOf(func(js.Value, []js.Value) any {
		fn(window.Get("scrollY").Float())
		return nil
	})
	window.Call("addEventListener", "scroll", handler, map[string]any{"passive": true})
	fn(window.Get("scrollY").Float())
	return func() {
		window.Call("removeEventListener", "scroll", handler)
		handler.Release()
	}
}
