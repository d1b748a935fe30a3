//go:build js && wasm

// Package main is the WASM build of the wait widget. It installs the global
// rsWait object so page scripts can wrap slow requests:
//
//	rsWait.start('waitBox', 'product-description');
//	fetch('/api/v1/generate', {method: 'POST'}).finally(() => rsWait.stop());
package main

import (
	"syscall/js"

	"github.com/Snider/rswait/pkg/dom"
	"github.com/Snider/rswait/pkg/rotator"
)

// Version of the WASM module
const Version = "1.0.0"

var waiter = rotator.New(dom.New())

func main() {
	js.Global().Set("rsWait", js.ValueOf(map[string]interface{}{
		"start":   js.FuncOf(start),
		"stop":    js.FuncOf(stop),
		"active":  js.FuncOf(active),
		"version": Version,
		"ready":   true,
	}))

	dispatchReadyEvent()

	// Keep the WASM module alive
	select {}
}

// dispatchReadyEvent fires a custom event to notify JS that WASM is loaded
func dispatchReadyEvent() {
	event := js.Global().Get("CustomEvent").New("rswait:ready", map[string]interface{}{
		"detail": map[string]interface{}{
			"version": Version,
		},
	})
	js.Global().Get("document").Call("dispatchEvent", event)
}

// start(containerId, contextKey) returns false when the container is missing.
func start(this js.Value, args []js.Value) interface{} {
	containerID, contextKey := "", ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		containerID = args[0].String()
	}
	if len(args) > 1 && args[1].Type() == js.TypeString {
		contextKey = args[1].String()
	}
	return waiter.Start(containerID, contextKey)
}

func stop(this js.Value, args []js.Value) interface{} {
	waiter.Stop()
	return nil
}

func active(this js.Value, args []js.Value) interface{} {
	return waiter.Active()
}
