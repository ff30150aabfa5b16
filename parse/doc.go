// Package parse turns nccl text into ir trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte("server\n    example.com\n"))
//	if err != nil {
//	    // *token.ScanError or parse.ErrDepthSkip
//	}
//	node.Get("server").Children[0].Name // "example.com"
//
// Parsing is referentially transparent: the same input always yields
// the same tree or the same error, and no state leaks between calls
// (each call starts indentation-unit inference fresh).
//
// # Related packages
//
//   - github.com/nccl-format/go-nccl/ir - the tree representation
//   - github.com/nccl-format/go-nccl/token - the line scanner
//   - github.com/nccl-format/go-nccl/merge - structural union of trees
package parse
