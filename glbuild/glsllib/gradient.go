package glsllib

import (
	"errors"

	math "github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glcompose/glbuild"
)

// Gradient returns a const vec3[n] table named name holding n RGB colors
// interpolated in HSV space from c0 to c1. Color components are in [0, 1].
// The table is meant to be bound to [ColormapTable].
func Gradient(name string, c0, c1 ms3.Vec, n int) (*glbuild.Variable, error) {
	if n < 2 {
		return nil, errors.New("gradient requires at least two colors")
	}
	h0, s0, v0 := rgbToHSV(c0.X, c0.Y, c0.Z)
	h1, s1, v1 := rgbToHSV(c1.X, c1.Y, c1.Z)
	table := make([]ms3.Vec, n)
	for i := range table {
		t := float32(i) / float32(n-1)
		r, g, b := hsvToRGB(interpHSV(h0, s0, v0, h1, s1, v1, t))
		table[i] = ms3.Vec{X: r, Y: g, Z: b}
	}
	return glbuild.NewConst(name, table)
}

// interpHSV interpolates along the shortest path around the hue circle.
func interpHSV(h0, s0, v0, h1, s1, v1, t float32) (h, s, v float32) {
	switch {
	case h1-h0 > 0.5:
		h0 += 1.0
	case h1-h0 < -0.5:
		h1 += 1.0
	}
	h = math.Mod(ms1.Interp(h0, h1, t), 1)
	s = ms1.Interp(s0, s1, t)
	v = ms1.Interp(v0, v1, t)
	return h, s, v
}

// hsvToRGB converts hue, saturation and brightness values on the range of 0.0
// to 1.0 to RGB values on the range of 0.0 to 1.0.
func hsvToRGB(h, s, v float32) (r, g, b float32) {
	var (
		c = s * v
		x = c * (1 - math.Abs(math.Mod(h*6, 2)-1))
		m = v - c
	)
	switch {
	case h <= 1.0/6:
		r, g, b = c, x, 0
	case h <= 2.0/6:
		r, g, b = x, c, 0
	case h <= 3.0/6:
		r, g, b = 0, c, x
	case h <= 4.0/6:
		r, g, b = 0, x, c
	case h <= 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// rgbToHSV converts RGB values on the range 0.0 to 1.0 to hue, saturation
// and brightness values on the range 0.0 to 1.0. Inputs are clamped.
func rgbToHSV(r, g, b float32) (h, s, v float32) {
	r, g, b = ms1.Clamp(r, 0, 1), ms1.Clamp(g, 0, 1), ms1.Clamp(b, 0, 1)
	var (
		xmax = max(r, g, b)
		xmin = min(r, g, b)
		c    = xmax - xmin
	)
	v = xmax
	switch {
	case c == 0:
		h = 0
	case v == r:
		h = (g - b) / (c * 6)
	case v == g:
		h = 1.0/3 + (b-r)/(c*6)
	default:
		h = 2.0/3 + (r-g)/(c*6)
	}
	if h < 0 {
		h += 1
	}
	if xmax > 0 {
		s = c / xmax
	}
	return h, s, v
}
