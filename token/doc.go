// Package token scans raw nccl text into logical lines.
//
// A logical line is a (depth, text) pair. Full-line comments (first
// non-whitespace character '#') and whitespace-only lines are
// discarded. Depth is derived from leading whitespace using a
// per-top-level-subtree inferred unit: the first indented line beneath
// each top-level node fixes the whitespace character (space or tab)
// and the count per nesting level for that subtree. Distinct top-level
// subtrees may use distinct units.
//
// Text is either bare (trimmed, verbatim), double-quoted with \n \r
// \t \" \\ escapes on a single physical line, or triple-quoted
// ("""..."""), taken completely literally and allowed to span physical
// lines.
//
// Scanning is pure and deterministic; failures are *ScanError values
// wrapping the sentinel errors in this package and carrying a Pos.
package token
