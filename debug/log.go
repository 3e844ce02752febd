package debug

import (
	"fmt"
	"os"

	"github.com/signadot/graphmap/encode"
	"github.com/signadot/graphmap/ir"
)

// Logf writes to stderr, rendering *ir.Node arguments compactly.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = encode.String(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
