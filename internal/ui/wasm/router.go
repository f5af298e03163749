//go:build js && wasm

package wasm

import "syscall/js"

// historyRouter implements nav.Router over the History API.
type historyRouter struct {
	onChange func(path string)
	popstate js.Func
}

func newHistoryRouter(onChange func(path string)) *historyRouter {
	r := &historyRouter{onChange: onChange}
	r.popstate = js.FuncOf(func(js.Value, []js.Value) any {
		r.onChange(r.CurrentPath())
		return nil
	})
	js.Global().Call("addEventListener", "popstate", r.popstate)
	return r
}

func (r *historyRouter) Navigate(path string) {
	if path == r.CurrentPath() {
		r.onChange(path)
		return
	}
	js.Global().Get("history").Call("pushState", nil, "", path)
	r.onChange(path)
}

func (r *historyRouter) CurrentPath() string {
	return js.Global().Get("location").Get("pathname").String()
}

func (r *historyRouter) release() {
	js.Global().Call("removeEventListener", "popstate", r.popstate)
	r.popstate.Release()
}
