// Package main provides the unitwand CLI.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor distinguishes caller mistakes (bad forms, bad input) from
// system problems such as an unreadable configuration directory.
func exitCodeFor(err error) int {
	if errors.Is(err, errConfig) {
		return exitSysError
	}
	return exitUserError
}
