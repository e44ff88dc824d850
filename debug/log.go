package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/objpath/encode"
	"github.com/signadot/objpath/ir"
)

// Logf writes to stderr, rendering *ir.Node and plain json values as
// compact json.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			s, err := encode.String(x, encode.EncodeWire(true))
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = s
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
