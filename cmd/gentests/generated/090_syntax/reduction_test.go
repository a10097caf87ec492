
package gentests
import _ "embed"
import "testing"
import "github.com/vic/golam/cmd/gentests/helper"
//go:embed input.lc
var input string
//go:embed output.txt
var output string
func Test_090_syntax_Reduction(t *testing.T) {
	gentests.CheckProgram(t, "090_syntax", input, output)
}
