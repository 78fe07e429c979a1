package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Command completed
	ExitCheckFailed = 1 // check found problems in the input files
	ExitError       = 2 // Configuration or runtime error
)

// CheckFailureError indicates that the check command ran successfully,
// but the checked files contain records that do not match their schema.
type CheckFailureError struct {
	Message string
}

func (e *CheckFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var checkErr *CheckFailureError
		if errors.As(err, &checkErr) {
			os.Exit(ExitCheckFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
