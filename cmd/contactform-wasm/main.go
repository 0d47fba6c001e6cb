//go:build js && wasm

// Command contactform-wasm binds the contact controller to the page it is
// loaded into. Build with GOOS=js GOARCH=wasm and load it with wasm_exec.js.
package main

import (
	"os"

	"github.com/goliatone/go-contactform/internal/logging"
	"github.com/goliatone/go-contactform/internal/wasmdom"
	"github.com/goliatone/go-contactform/pkg/contact"
)

func main() {
	logger, err := logging.New(logging.Config{Output: os.Stderr, Component: "contactform"})
	if err != nil {
		os.Exit(1)
	}

	surface := wasmdom.New()
	var senderOpts []contact.SenderOption
	if base, err := surface.BaseURL(); err == nil {
		senderOpts = append(senderOpts, contact.WithBaseURL(base))
	}

	ctrl := contact.New(surface,
		contact.WithLogger(logger),
		contact.WithSender(contact.NewHTTPSender(senderOpts...)),
	)
	if err := ctrl.Init(); err != nil {
		if !contact.IsInert(err) {
			logger.Error("contact form init failed", "error", err)
		}
		return
	}

	select {}
}
