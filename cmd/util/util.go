// Package util contains helpers shared by the command implementations:
// fatal error handling, store access, and terminal output.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/store"
)

// HandleFatalError prints the friendliest message available for err and
// exits. Only command implementations should call it; library packages
// return errors upward instead.
func HandleFatalError(err error) {
	log.WithError(err).Debug("Fatal error")
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorPrefix(), errors.GetPrintableMessage(err))
	os.Exit(1)
}

// HandlePanic recovers from panics in the main process and asks the user
// to report them, rather than dumping a bare stack trace.
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "rusync hit an unexpected error: %v\n%s\n", r, debug.Stack())
	fmt.Fprintln(os.Stderr, "This is a bug. Please open an issue with the output above.")
	os.Exit(1)
}

// OpenStore returns the store at the default per-user location. Failing to
// resolve the home directory is fatal to the caller: without it there is
// no source of truth to operate on.
func OpenStore() (store.Store, error) {
	path, err := store.DefaultPath()
	if err != nil {
		return store.Store{}, errors.WithContext(err, "resolve store path")
	}
	return store.New(path), nil
}

// CurrentDir returns the current working directory with symlinks resolved,
// so that it compares cleanly against the canonicalized paths in the store.
func CurrentDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.WithContext(err, "get working directory")
	}

	resolved, err := filepath.EvalSymlinks(wd)
	if err != nil {
		return "", errors.WithContext(err, "resolve working directory")
	}
	return resolved, nil
}
