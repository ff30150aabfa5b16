package ir

import "testing"

func TestGetPath(t *testing.T) {
	root := tree()
	if n := GetPath(root, "server.hosts.alpha"); n == nil || n.Name != "alpha" {
		t.Errorf("got %+v", n)
	}
	if n := GetPath(root, "server.missing"); n != nil {
		t.Errorf("missing path resolved to %+v", n)
	}
	if n := GetPath(root, ""); n != root {
		t.Error("empty path should return the node itself")
	}
}

func TestGetSegments(t *testing.T) {
	root := NewRoot()
	root.Add("a.b").Add("c")
	if n := GetSegments(root, "a.b", "c"); n == nil || n.Name != "c" {
		t.Error("segments should allow dotted names")
	}
	if n := GetPath(root, "a.b.c"); n != nil {
		t.Error("dotted name is not addressable via GetPath")
	}
}

func TestPath(t *testing.T) {
	root := tree()
	for path, want := range map[string]string{
		"server":            "server",
		"server.port":       "server.port",
		"server.hosts.beta": "server.hosts.beta",
	} {
		n := GetPath(root, path)
		if n == nil {
			t.Fatalf("missing %q", path)
		}
		if got := n.Path(); got != want {
			t.Errorf("Path = %q, want %q", got, want)
		}
	}
	if got := root.Path(); got != "" {
		t.Errorf("root Path = %q", got)
	}
}
