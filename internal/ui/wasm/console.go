//go:build js && wasm

package wasm

import (
	"strings"
	"syscall/js"
)

// consoleWriter forwards log lines to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	console := js.Global().Get("console")
	if console.Truthy() {
		line := strings.TrimRight(string(p), "\n")
		method := "log"
		switch {
		case strings.Contains(line, `"level":"ERROR"`), strings.Contains(line, `"level":"FATAL"`):
			method = "error"
		case strings.Contains(line, `"level":"WARN"`):
			method = "warn"
		}
		console.Call(method, line)
	}
	return len(p), nil
}
