package gentests

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vic/golam/pkg/interp"
	"github.com/vic/golam/pkg/reduce"
)

// maxPasses keeps a broken golden case from reducing forever.
const maxPasses = 10000

// CheckProgram runs inputStr and compares everything it prints, including
// the error report of a failing program, with outputStr.
func CheckProgram(t *testing.T, testName string, inputStr string, outputStr string) {
	t.Helper()
	expected := strings.TrimSpace(outputStr)

	var out bytes.Buffer
	in := interp.New(&out, nil, reduce.Options{MaxPasses: maxPasses})

	start := time.Now()
	err := in.Run(testName+".lc", inputStr)
	elapsed := time.Since(start)

	code := interp.Report(&out, err)
	if err != nil && code != interp.ExitFailure {
		t.Errorf("%s: exit code %d, want %d", testName, code, interp.ExitFailure)
	}

	actual := strings.TrimSpace(out.String())
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("Mismatch in %s:\nInput: %s\n(-expected +actual):\n%s", testName, inputStr, diff)
	}

	stats := in.Stats()
	t.Logf("%s: %d rewrites in %d passes, %v", testName, stats.Total(), stats.Passes, elapsed)
}
