// Package glsllib is a small library of GLSL functions ready to be composed
// by a [glcompose.Compiler]. Every call returns a new fragment.
package glsllib

import (
	_ "embed"

	"github.com/soypat/glcompose"
	"github.com/soypat/glcompose/glbuild"
)

//go:embed transform.glsl
var transformSrc string

// Transform multiplies a position by the model, view and projection mat4 uniforms:
//
//	vec4 transform(vec3 position)
func Transform(model, view, projection glcompose.Fragment) *glbuild.Function {
	return glbuild.MustFunction(transformSrc).
		Bind("model", model).
		Bind("view", view).
		Bind("projection", projection)
}

//go:embed pointsprite.glsl
var pointSpriteSrc string

// PointAlpha is the alpha of a round point sprite at gl_PointCoord coord:
//
//	float point_alpha(vec2 coord)
func PointAlpha() *glbuild.Function {
	return glbuild.MustFunction(pointSpriteSrc)
}

//go:embed hash12.glsl
var hash12Src string

// Hash12 is a pseudo-random hash of a 2D coordinate in [0, 1):
//
//	float hash12(vec2 p)
func Hash12() *glbuild.Function {
	return glbuild.MustFunction(hash12Src)
}

//go:embed rotate2D.glsl
var rotate2DSrc string

// Rotate2D rotates p counter-clockwise by angle radians:
//
//	vec2 rotate2D(vec2 p, float angle)
func Rotate2D() *glbuild.Function {
	return glbuild.MustFunction(rotate2DSrc)
}

//go:embed colormap.glsl
var colormapSrc string

// Colormap samples a 1D lookup texture stored in a sampler2D uniform at t:
//
//	vec3 colormap(float t)
func Colormap(lut glcompose.Fragment) *glbuild.Function {
	return glbuild.MustFunction(colormapSrc).Bind("lut", lut)
}

//go:embed colormaptable.glsl
var colormapTableSrc string

// ColormapTable linearly interpolates a constant vec3 array at t, see [Gradient]:
//
//	vec3 colormap_table(float t)
func ColormapTable(table glcompose.Fragment) *glbuild.Function {
	return glbuild.MustFunction(colormapTableSrc).Bind("table", table)
}
