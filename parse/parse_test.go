package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/nccl-format/go-nccl/ir"
	"github.com/nccl-format/go-nccl/token"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpOpts = cmpopts.IgnoreFields(ir.Node{}, "Parent", "ParentIndex")

func leaves(names ...string) []*ir.Node {
	res := make([]*ir.Node, len(names))
	for i, n := range names {
		res[i] = ir.New(n)
	}
	return res
}

type parseTest struct {
	name string
	in   string
	want *ir.Node
	e    error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			name: "empty",
			in:   "",
			want: ir.NewRoot(),
		},
		{
			name: "comments only",
			in:   "# one\n\n# two\n",
			want: ir.NewRoot(),
		},
		{
			name: "flat",
			in:   "a\nb\nc\n",
			want: &ir.Node{Children: leaves("a", "b", "c")},
		},
		{
			name: "key values",
			in:   "server\n    port\n        8080\n",
			want: &ir.Node{Children: []*ir.Node{
				{Name: "server", Children: []*ir.Node{
					{Name: "port", Children: leaves("8080")},
				}},
			}},
		},
		{
			name: "dedent closes branches",
			in:   "a\n  b\n    c\n  d\ne\n",
			want: &ir.Node{Children: []*ir.Node{
				{Name: "a", Children: []*ir.Node{
					{Name: "b", Children: leaves("c")},
					{Name: "d"},
				}},
				{Name: "e"},
			}},
		},
		{
			name: "independent units per subtree",
			in:   "a\n  b\nc\n\td\n",
			want: &ir.Node{Children: []*ir.Node{
				{Name: "a", Children: leaves("b")},
				{Name: "c", Children: leaves("d")},
			}},
		},
		{
			name: "duplicate names preserved",
			in:   "host\nhost\n",
			want: &ir.Node{Children: leaves("host", "host")},
		},
		{
			name: "quoted names",
			in:   "\"a b\"\n    \"# not a comment\"\n",
			want: &ir.Node{Children: []*ir.Node{
				{Name: "a b", Children: leaves("# not a comment")},
			}},
		},
		{
			name: "multiline literal as one node",
			in:   "script\n    \"\"\"line 1\nline 2\"\"\"\n",
			want: &ir.Node{Children: []*ir.Node{
				{Name: "script", Children: leaves("line 1\nline 2")},
			}},
		},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			got, err := Parse([]byte(pt.in))
			if err != nil {
				t.Fatalf("parse %q: %v", pt.in, err)
			}
			if d := cmp.Diff(pt.want, got, cmpOpts); d != "" {
				t.Errorf("parse %q: (-want +got):\n%s", pt.in, d)
			}
		})
	}
}

func TestParseErr(t *testing.T) {
	pts := []parseTest{
		{
			name: "depth skip",
			in:   "a\n    b\n            c\n",
			e:    ErrDepthSkip,
		},
		{
			name: "indented first line",
			in:   "    a\n",
			e:    ErrDepthSkip,
		},
		{
			name: "depth skip with two space unit",
			in:   "a\n  b\n      c\n",
			e:    ErrDepthSkip,
		},
		{
			name: "inconsistent unit",
			in:   "a\n    b\n  c\n",
			e:    token.ErrInconsistentIndentation,
		},
		{
			name: "unterminated literal",
			in:   "a\n    \"oops\n",
			e:    token.ErrUnterminatedLiteral,
		},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			_, err := Parse([]byte(pt.in))
			if err == nil {
				t.Fatalf("parse %q: expected error", pt.in)
			}
			if !errors.Is(err, pt.e) {
				t.Errorf("parse %q: got %v, want %v", pt.in, err, pt.e)
			}
		})
	}
}

func TestParseNonNilRoot(t *testing.T) {
	root, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if root == nil || !root.IsRoot() {
		t.Fatalf("got %+v", root)
	}
	if len(root.Children) != 0 {
		t.Errorf("empty input produced children: %v", root.Names())
	}
}

func TestParseDepthInvariant(t *testing.T) {
	root, err := Parse([]byte("a\n  b\n    c\n  d\ne\n  f\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = root.Walk(func(n *ir.Node) error {
		want := 0
		if !n.Parent.IsRoot() {
			want = n.Parent.Depth() + 1
		}
		if n.Depth() != want {
			t.Errorf("node %q at depth %d, want %d", n.Name, n.Depth(), want)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestParseWithFilename(t *testing.T) {
	_, err := Parse([]byte("    a\n"), WithFilename("conf.nccl"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "conf.nccl: ") {
		t.Errorf("error %q lacks filename prefix", err)
	}
	if !errors.Is(err, ErrDepthSkip) {
		t.Errorf("wrapping lost the sentinel: %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	root, err := Parse([]byte("a\n    b\n"), ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	b := ir.GetPath(root, "a.b")
	pos, ok := positions[b]
	if !ok || pos == nil {
		t.Fatal("no position recorded for b")
	}
	line, col := pos.LineCol()
	if line != 1 || col != 4 {
		t.Errorf("got line=%d col=%d, want line=1 col=4", line, col)
	}
}
