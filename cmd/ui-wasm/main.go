//go:build js && wasm

package main

import "github.com/greenaire/site/internal/ui/wasm"

func main() {
	wasm.RunApp()
}
