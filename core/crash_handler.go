package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"
)

// Finisher restores a device the process took over, such as the terminal
type Finisher interface {
	Fini()
}

var (
	crashMu      sync.Mutex
	crashScreen  Finisher
	crashHandler = exitOnCrash
)

// SetCrashScreen registers the screen to restore before a crash report is printed
func SetCrashScreen(f Finisher) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = f
}

// SetCrashHandler replaces the crash handler and returns a function restoring the previous one
func SetCrashHandler(h func(r any)) (restore func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	prev := crashHandler
	crashHandler = h
	return func() {
		crashMu.Lock()
		defer crashMu.Unlock()
		crashHandler = prev
	}
}

// HandleCrash is the unified panic handler
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashMu.Lock()
	h := crashHandler
	crashMu.Unlock()
	h(r)
}

// exitOnCrash restores the terminal, reports the panic and exits
func exitOnCrash(r any) {
	crashMu.Lock()
	screen := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	}

	stack := debug.Stack()
	log.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
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
