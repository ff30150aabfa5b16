// Package ir defines the tree representation shared by the nccl
// parser, encoder and merger.
//
// # Overview
//
// An nccl document parses to a tree of [Node] values. Every node is a
// name plus an ordered list of children; leaf text is opaque and never
// type-coerced. A document's top-level nodes hang off a synthetic root
// with an empty name.
//
//	root := ir.NewRoot()
//	server := root.Add("server")
//	server.Add("example.com")
//
// # Ownership
//
// Each node is exclusively owned by its parent: the tree is a strict
// hierarchy with no sharing and no cycles (Parent back-pointers aside).
// Trees are immutable by convention once construction finishes;
// consumers that need to modify one should Clone it first.
//
// # Thread safety
//
// Completed trees may be shared read-only across goroutines without
// synchronization. Construction is not synchronized.
package ir
