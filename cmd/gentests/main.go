package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/vic/golam/cmd/gentests/helper"
//go:embed input.lc
var input string
//go:embed output.txt
var output string
func Test_%s_Reduction(t *testing.T) {
	gentests.CheckProgram(t, "%s", input, output)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", "print !x.x;", "!x.x"},
		{"002_id_id", "let id = !x.x; print (id id);", "!x.x"},

		// K and flipped application
		{"003_k", "print (!x.!y.x) a b;", "a"},
		{"004_flip", "print (!x.!y.y x) a b;", "b (a)"},

		// Church numerals
		{"010_three", "printnum 3;", "3"},
		{"011_zero", "printnum 0;", "0"},
		{"012_succ_zero", "import math; printnum succ 0;", "1"},
		{"013_print_succ_zero", "import math; print succ 0;", "!a.!b.a (b)"},
		{"014_add", "import math; printnum add 2 3;", "5"},

		// Logic
		{"020_true", "import bool; printbool (!a.!b.a);", "true"},
		{"021_false", "import bool; printbool false;", "false"},
		{"022_stdlib", "import stdlib; printbool true; printnum succ 1;", "true\n2"},

		// Hygiene
		{"040_capture", "print (!x.!y.x y) y;", "!a0.y a0"},

		// Errors
		{"090_syntax", "let x = ;", "SYNTAX ERROR (1): Unable to parse term"},
		{"091_not_bool", "printbool (!x.x);", "RUNTIME ERROR: Unable to convert term to bool"},
		{"092_unknown_library", "import foo; print x;", "IMPORT ERROR: foo is not a native library"},
		{"093_partial_output", "print a;\nprintnum (!x.x);", "a\nRUNTIME ERROR: Unable to convert term to number"},
	}

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "input.lc"), []byte(tc.Input+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "output.txt"), []byte(strings.TrimSpace(tc.Output)+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}
