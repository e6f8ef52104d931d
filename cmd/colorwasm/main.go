//go:build js && wasm

// Package main exports color lookups to a JavaScript host.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o color.wasm ./cmd/colorwasm
//
// and call colorString(1) from JS after instantiating the module.
package main

import (
	"syscall/js"

	"github.com/tecu23/piece-color/pkg/binding"
)

func colorString(_ js.Value, args []js.Value) any {
	if len(args) != 1 || args[0].Type() != js.TypeNumber {
		return js.Null()
	}

	code, ok := binding.ColorStringFloat(args[0].Float())
	if !ok {
		return js.Null()
	}

	return js.ValueOf(code)
}

func main() {
	fn := js.FuncOf(colorString)
	defer fn.Release()

	js.Global().Set("colorString", fn)

	// keep the runtime alive for host calls
	select {}
}
