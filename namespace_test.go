package glcompose

import (
	"slices"
	"testing"
)

func TestNamespaceClaim(t *testing.T) {
	ns := newNamespace()
	if ns.has("a") {
		t.Fatal("empty namespace has name")
	}
	ns.claim("a", 3)
	if id, ok := ns.owner("a"); !ok || id != 3 {
		t.Fatalf("owner: got %d %v", id, ok)
	}
	defer func() {
		if recover() == nil {
			t.Error("claim of taken name did not panic")
		}
	}()
	ns.claim("a", 4)
}

func TestDefaultKeywords(t *testing.T) {
	kw := DefaultKeywords()
	for _, want := range []string{"float", "vec3", "uniform", "texture2D", "gl_Position", "if", "discard"} {
		if !slices.Contains(kw, want) {
			t.Errorf("missing keyword %q", want)
		}
	}
	if slices.Contains(kw, "main") {
		t.Error("main must be assignable")
	}
	kw[0] = "mutated"
	if DefaultKeywords()[0] == "mutated" {
		t.Error("DefaultKeywords returned shared slice")
	}
}

func TestStripVersion(t *testing.T) {
	c := NewCompiler(CompilerConfig{Version: "  330   core "})
	if c.version != "330 core" {
		t.Fatalf("version not normalized: %q", c.version)
	}
	got, err := c.stripVersion([]byte("#version 330 core\nfloat x;"))
	if err != nil {
		t.Fatal(err)
	} else if string(got) != "\nfloat x;" {
		t.Errorf("got %q", got)
	}
	if _, err = c.stripVersion([]byte("#version 330\n")); err == nil {
		t.Error("profile mismatch accepted")
	}
	if _, err = c.stripVersion([]byte("#version 450 core\n")); err == nil {
		t.Error("version mismatch accepted")
	}
	for _, src := range []string{"# version 450\n", "  #\tversion 450 core\n", "float x;\n #  version 100\n"} {
		if _, err = c.stripVersion([]byte(src)); err == nil {
			t.Errorf("spaced directive %q not checked", src)
		}
	}
	got, err = c.stripVersion([]byte("  # version 330 core\nfloat y; // #version 100 in a comment"))
	if err != nil {
		t.Fatal(err)
	} else if string(got) != "\nfloat y; // #version 100 in a comment" {
		t.Errorf("got %q", got)
	}
}
