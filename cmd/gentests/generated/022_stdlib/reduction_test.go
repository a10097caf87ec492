
package gentests
import _ "embed"
import "testing"
import "github.com/vic/golam/cmd/gentests/helper"
//go:embed input.lc
var input string
//go:embed output.txt
var output string
func Test_022_stdlib_Reduction(t *testing.T) {
	gentests.CheckProgram(t, "022_stdlib", input, output)
}
