package glsllib_test

import (
	"strings"
	"testing"

	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glcompose"
	"github.com/soypat/glcompose/glbuild"
	"github.com/soypat/glcompose/glbuild/glsllib"
)

func TestLibraryCompiles(t *testing.T) {
	model := glbuild.NewUniform("mat4", "model")
	view := glbuild.NewUniform("mat4", "view")
	projection := glbuild.NewUniform("mat4", "projection")
	lut := glbuild.NewUniform("sampler2D", "lut")
	funcs := map[string]*glbuild.Function{
		"transform":   glsllib.Transform(model, view, projection),
		"point_alpha": glsllib.PointAlpha(),
		"hash12":      glsllib.Hash12(),
		"rotate2D":    glsllib.Rotate2D(),
		"colormap":    glsllib.Colormap(lut),
	}
	table, err := glsllib.Gradient("palette", ms3.Vec{X: 1}, ms3.Vec{Z: 1}, 4)
	if err != nil {
		t.Fatal(err)
	}
	funcs["colormap_table"] = glsllib.ColormapTable(table)
	root := glbuild.NewSnippet("")
	for name, fn := range funcs {
		if err := fn.Err(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if fn.PreferredName() != name {
			t.Errorf("got name %q, want %q", fn.PreferredName(), name)
		}
		root.Require(fn)
	}
	c := glcompose.NewDefaultCompiler(glcompose.Stage{Key: "vert", Root: root})
	code, err := c.Compile()
	if err != nil {
		t.Fatal(err)
	}
	src := code["vert"]
	if !strings.Contains(src, "const vec3[4] palette = vec3[4](") {
		t.Errorf("gradient table not declared\n%s", src)
	}
	if strings.Contains(src, "$") {
		t.Errorf("unexpanded template reference\n%s", src)
	}
	if !strings.Contains(src, "return projection * view * model * vec4(position, 1.0);") {
		t.Errorf("transform not bound\n%s", src)
	}
}

func TestNewFragmentPerCall(t *testing.T) {
	a, b := glsllib.Hash12(), glsllib.Hash12()
	root := glbuild.NewSnippet("").Require(a, b)
	c := glcompose.NewDefaultCompiler(glcompose.Stage{Key: "frag", Root: root})
	if _, err := c.Compile(); err != nil {
		t.Fatal(err)
	}
	nb, err := c.Lookup(b)
	if err != nil {
		t.Fatal(err)
	}
	if nb != "hash12_1" {
		t.Errorf("got %q, want hash12_1", nb)
	}
}

func TestGradient(t *testing.T) {
	// Red to blue goes the short way around the hue circle, through magenta.
	v, err := glsllib.Gradient("g", ms3.Vec{X: 1}, ms3.Vec{Z: 1}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != "vec3[3]" {
		t.Errorf("got type %s", v.Type())
	}
	c := glcompose.NewDefaultCompiler(glcompose.Stage{Key: "frag", Root: v})
	code, err := c.Compile()
	if err != nil {
		t.Fatal(err)
	}
	const want = "const vec3[3] g = vec3[3](vec3(1.,0.,0.),vec3(1.,0.,1.),vec3("
	if !strings.Contains(code["frag"], want) {
		t.Errorf("got\n%s\nwant\n%s", code["frag"], want)
	}
	if _, err = glsllib.Gradient("g", ms3.Vec{}, ms3.Vec{}, 1); err == nil {
		t.Error("single color gradient accepted")
	}
}
