package encode_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nccl-format/go-nccl/encode"
	"github.com/nccl-format/go-nccl/ir"
	"github.com/nccl-format/go-nccl/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return n
}

func TestEncode(t *testing.T) {
	ets := []struct {
		name string
		in   *ir.Node
		want string
		opts []encode.EncodeOption
	}{
		{
			name: "flat",
			in: &ir.Node{Children: []*ir.Node{
				ir.New("a"), ir.New("b"),
			}},
			want: "a\nb\n",
		},
		{
			name: "nested default unit",
			in: &ir.Node{Children: []*ir.Node{
				ir.FromLeaves("server", "8080"),
			}},
			want: "server\n    8080\n",
		},
		{
			name: "two space unit",
			in: &ir.Node{Children: []*ir.Node{
				ir.FromLeaves("server", "8080"),
			}},
			want: "server\n  8080\n",
			opts: []encode.EncodeOption{encode.EncodeUnit(2)},
		},
		{
			name: "tabs",
			in: &ir.Node{Children: []*ir.Node{
				ir.FromLeaves("server", "8080"),
			}},
			want: "server\n\t8080\n",
			opts: []encode.EncodeOption{encode.EncodeTabs()},
		},
		{
			name: "non root node encodes itself",
			in:   ir.FromLeaves("k", "v"),
			want: "k\n    v\n",
		},
		{
			name: "starting depth",
			in:   ir.New("a"),
			want: "    a\n",
			opts: []encode.EncodeOption{encode.Depth(1)},
		},
		{
			name: "quoting",
			in: &ir.Node{Children: []*ir.Node{
				ir.New(""),
				ir.New("# looks like a comment"),
				ir.New(" padded "),
				ir.New("tab\there"),
			}},
			want: "\"\"\n\"# looks like a comment\"\n\" padded \"\n\"tab\\there\"\n",
		},
		{
			name: "triple quoting",
			in: &ir.Node{Children: []*ir.Node{
				ir.New("line 1\nline 2"),
			}},
			want: "\"\"\"line 1\nline 2\"\"\"\n",
		},
	}
	for _, et := range ets {
		t.Run(et.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(et.in, buf, et.opts...); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != et.want {
				t.Errorf("got %q, want %q", got, et.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	docs := []string{
		"",
		"a\n",
		"server\n    host\n        example.com\n    port\n        8080\n",
		"dup\ndup\n",
		"\"  padded  \"\n    \"# child\"\n",
		"script\n    \"\"\"echo hi\necho bye\"\"\"\n",
		"a\n    b\n        c\n        d\n    e\nf\n",
	}
	for _, doc := range docs {
		orig := mustParse(t, doc)
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(orig, buf); err != nil {
			t.Fatalf("encode %q: %v", doc, err)
		}
		again := mustParse(t, buf.String())
		if !ir.Equal(orig, again) {
			t.Errorf("round trip of %q changed the tree (encoded %q)", doc, buf.String())
		}
	}
}

func TestEncodeNormalizes(t *testing.T) {
	in := "a\n  b\nc\n\td\n"
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(mustParse(t, in), buf); err != nil {
		t.Fatal(err)
	}
	want := "a\n    b\nc\n    d\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	got := encode.MustString(mustParse(t, "a\n    b\n"))
	if got != "a\n    b" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColorsEscapesPercent(t *testing.T) {
	colors := encode.NewColors()
	out := colors.Color(encode.LeafColor, "100%")
	if !strings.Contains(out, "100%") {
		t.Errorf("colored text mangled: %q", out)
	}
}

func TestToYAML(t *testing.T) {
	yts := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "leaf list",
			in:   "hosts\n    alpha\n    beta\n",
			want: "hosts:\n- alpha\n- beta\n",
		},
		{
			name: "nested mapping",
			in:   "server\n    port\n        8080\n",
			want: "server:\n  port:\n  - \"8080\"\n",
		},
		{
			name: "leaf child maps to null",
			in:   "a\n    b\nc\n",
			want: "a:\n- b\nc: null\n",
		},
	}
	for _, yt := range yts {
		t.Run(yt.name, func(t *testing.T) {
			d, err := encode.ToYAML(mustParse(t, yt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := string(d); got != yt.want {
				t.Errorf("got %q, want %q", got, yt.want)
			}
		})
	}
}

func TestToYAMLEmpty(t *testing.T) {
	d, err := encode.ToYAML(mustParse(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(d)) != "null" {
		t.Errorf("got %q", d)
	}
}
