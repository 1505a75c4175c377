//go:build js && wasm

// Command tailview-wasm renders the haminer log tail into the page element
// with id "log". Build with GOOS=js GOARCH=wasm and load it next to
// wasm_exec.js.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/five82/tailview/internal/diag"
	"github.com/five82/tailview/internal/dom"
	"github.com/five82/tailview/internal/tail"
	"github.com/five82/tailview/internal/viewer"
)

const containerID = "log"

func main() {
	os.Exit(run())
}

func run() int {
	// Stdout is routed to the browser console.
	logger, closeLog, err := diag.New(diag.Options{Writer: os.Stdout, Verbose: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tailview: %v\n", err)
		return 1
	}
	defer closeLog()

	client, err := tail.NewClient(dom.Origin())
	if err != nil {
		logger.Error("init tail client", zap.Error(err))
		return 1
	}

	v := viewer.New(client, logger)
	if err := v.Activate(context.Background(), dom.Global(), containerID); err != nil {
		logger.Error("activate log tail", zap.Error(err))
		return 1
	}

	// Keep the Go runtime alive for the life of the stream.
	<-v.Done()
	return 0
}
