package parse

import "errors"

// ErrDepthSkip reports a line nested more than one level past its
// nearest open ancestor, including an indented line at the start of a
// document with no top-level node to hang from.
var ErrDepthSkip = errors.New("depth skip")
