/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package testingu

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Command line test case
type CmdTestCase struct {
	Name  string
	Args  []string
	Stdin string

	// Error expected to be in the returned error chain
	ExpectedErr error

	// Substrings expected to be in the returned error message
	ExpectedErrPatterns []string

	// Regular expressions expected to match standard output
	ExpectedStdoutPatterns []string
}

// Runs test cases against execute function, which is usually the main
// command entry point. Standard input and output are redirected for each case.
func RunCmdTestCases(t *testing.T, execute func(args []string, version string) error, version string, testCases ...CmdTestCase) {
	t.Helper()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			stdout, err := CaptureStdout(tc.Stdin, func() error {
				return execute(tc.Args, version)
			})

			for _, p := range tc.ExpectedStdoutPatterns {
				require.Regexp(t, p, stdout)
			}
			switch {
			case tc.ExpectedErr != nil || len(tc.ExpectedErrPatterns) > 0:
				require.Error(t, err)
				if tc.ExpectedErr != nil {
					require.ErrorIs(t, err, tc.ExpectedErr)
				}
				for _, p := range tc.ExpectedErrPatterns {
					require.ErrorContains(t, err, p)
				}
			default:
				require.NoError(t, err)
			}
		})
	}
}

// Runs f with standard input fed from stdin string and returns captured standard output
func CaptureStdout(stdin string, f func() error) (stdout string, err error) {
	outReader, outWriter, err := os.Pipe()
	if err != nil {
		return "", err
	}
	inReader, inWriter, err := os.Pipe()
	if err != nil {
		return "", err
	}

	origStdout, origStdin := os.Stdout, os.Stdin
	os.Stdout, os.Stdin = outWriter, inReader
	defer func() { os.Stdout, os.Stdin = origStdout, origStdin }()

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = io.WriteString(inWriter, stdin)
		inWriter.Close()
	}()
	go func() {
		defer wg.Done()
		var b bytes.Buffer
		_, _ = io.Copy(&b, outReader)
		stdout = b.String()
	}()

	err = f()
	outWriter.Close()
	inReader.Close()
	wg.Wait()
	return stdout, err
}
