package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tidy/internal/services"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to a shell-friendly status: bad input or
// configuration is distinguishable from a runtime failure, and a
// user-initiated cancellation stays quiet.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, services.ErrValidation) || errors.Is(err, services.ErrConfiguration) {
		return 2
	}
	return 1
}
