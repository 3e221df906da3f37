package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
	crashOut     io.Writer = os.Stderr
	crashExit              = os.Exit
)

// SetCrashCleanup registers the function that restores the terminal before a crash report
// Pass nil to clear it
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashCleanup = fn
}

// HandleCrash restores the terminal, prints the panic value with its stack and exits 1
// A nil value is ignored so it can be called with recover() directly
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashCleanup = nil
	out, exit := crashOut, crashExit
	crashMu.Unlock()

	if cleanup != nil {
		cleanup()
	}

	fmt.Fprintf(out, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", debug.Stack())
	exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
