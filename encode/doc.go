// Package encode renders ir trees back to nccl text.
//
// # Usage
//
//	node, _ := parse.Parse(data)
//	err := encode.Encode(node, os.Stdout)
//
//	// with options
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeTabs(),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related packages
//
//   - github.com/nccl-format/go-nccl/ir - the tree representation
//   - github.com/nccl-format/go-nccl/parse - the inverse operation
package encode
