// Package debug provides env-var gated tracing for parse and merge.
// Set NCCL_DEBUG_PARSE or NCCL_DEBUG_MERGE to a truthy value.
package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nccl-format/go-nccl/encode"
	"github.com/nccl-format/go-nccl/ir"
)

// Logf writes to stderr, rendering *ir.Node arguments as nccl text.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf); err != nil {
			args[i] = fmt.Sprintf("[raw node] %v", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
