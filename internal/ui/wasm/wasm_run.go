//go:build js && wasm

package wasm

import (
	"syscall/js"
	"time"

	"github.com/greenaire/site/logging"
)

// RunApp bootstraps the Green Aire WASM UI and blocks forever.
func RunApp() {
	done := make(chan struct{})
	window := js.Global()
	Document = window.Get("document")

	root := Document.Call("getElementById", "app-root")
	if !root.Truthy() {
		window.Get("console").Call("error", "app root missing")
		return
	}

	logger := logging.New("ui-wasm", logging.ParseLevel(dataAttr(root, "logLevel")), consoleWriter{})
	interval, _ := time.ParseDuration(dataAttr(root, "carouselInterval"))
	app := newApp(root, appConfig{
		relayEndpoint:    dataAttr(root, "relayEndpoint"),
		fallbackEmail:    dataAttr(root, "fallbackEmail"),
		carouselInterval: interval,
	}, logger)
	app.start()
	logger.Info(logging.CategoryGeneral, "ui started", map[string]any{
		"path":     app.router.CurrentPath(),
		"endpoint": app.relay.Endpoint,
	})
	<-done
}

func dataAttr(node js.Value, key string) string {
	v := node.Get("dataset").Get(key)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
