// Package glbuild implements GLSL code fragments for use with a [glcompose.Compiler]
// and helpers for formatting GLSL literals and declarations.
package glbuild

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/md2"
	"github.com/soypat/geometry/md3"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glcompose"
)

// Interface implementation compile-time checks.
var (
	_ glcompose.Fragment = (*Function)(nil)
	_ glcompose.Fragment = (*Variable)(nil)
	_ glcompose.Fragment = (*Snippet)(nil)
)

// ParseFunctionName returns the name in the signature of a GLSL function
// definition. Leading blank lines, line comments and preprocessor lines are skipped.
//
//	vec4 $transform(vec4 pos) { ... } // returns "$transform"
func ParseFunctionName(code string) (string, error) {
	for len(code) > 0 {
		line, rest, _ := strings.Cut(code, "\n")
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, "#") {
			break
		}
		code = rest
	}
	fnNameEnd := strings.IndexByte(code, '(')
	if fnNameEnd < 0 {
		return "", errors.New("unable to parse function name: missing argument list")
	}
	fields := strings.Fields(code[:fnNameEnd])
	if len(fields) < 2 {
		return "", errors.New("unable to parse function name: missing return type")
	}
	name := fields[len(fields)-1]
	if !isIdent(strings.TrimPrefix(name, "$")) {
		return "", fmt.Errorf("invalid function name %q", name)
	}
	return name, nil
}

func isIdent(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentChar(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// forEachRef calls fn for every $identifier template reference in code with
// the reference name (without $) and the byte span of the reference including $.
func forEachRef(code string, fn func(ref string, start, end int) error) error {
	for i := 0; i < len(code); i++ {
		if code[i] != '$' {
			continue
		}
		end := i + 1
		for end < len(code) && isIdentChar(code[end]) {
			end++
		}
		ref := code[i+1 : end]
		if !isIdent(ref) {
			continue // Lone dollar sign.
		}
		if err := fn(ref, i, end); err != nil {
			return err
		}
		i = end - 1
	}
	return nil
}

// AppendDefineDecl appends a preprocessor #define line.
func AppendDefineDecl(b []byte, aliasToDefine, aliasReplace string) []byte {
	b = append(b, "#define "...)
	b = append(b, aliasToDefine...)
	b = append(b, ' ')
	b = append(b, aliasReplace...)
	b = append(b, '\n')
	return b
}

// AppendLiteral appends value formatted as a GLSL literal and returns the
// GLSL typename of the value. Slices are formatted as array constructors.
func AppendLiteral(b []byte, value any) (result []byte, typename string, err error) {
	switch v := value.(type) {
	case float32:
		err = checkFloats(v)
		typename = "float"
		b = AppendFloat(b, '-', '.', v)
	case float64:
		err = checkDoubles(v)
		typename = "double"
		b = appendDouble(b, v)
	case int:
		typename = "int"
		b = strconv.AppendInt(b, int64(v), 10)
	case int32:
		typename = "int"
		b = strconv.AppendInt(b, int64(v), 10)
	case uint32:
		typename = "uint"
		b = strconv.AppendUint(b, uint64(v), 10)
		b = append(b, 'u')
	case bool:
		typename = "bool"
		b = strconv.AppendBool(b, v)
	case ms2.Vec:
		err = checkFloats(v.X, v.Y)
		typename = "vec2"
		b = appendCtor(b, typename, v.X, v.Y)
	case ms3.Vec:
		err = checkFloats(v.X, v.Y, v.Z)
		typename = "vec3"
		b = appendCtor(b, typename, v.X, v.Y, v.Z)
	case md2.Vec:
		err = checkDoubles(v.X, v.Y)
		typename = "dvec2"
		b = appendDoubleCtor(b, typename, v.X, v.Y)
	case md3.Vec:
		err = checkDoubles(v.X, v.Y, v.Z)
		typename = "dvec3"
		b = appendDoubleCtor(b, typename, v.X, v.Y, v.Z)
	case ms2.Mat2:
		arr := v.Array()
		err = checkFloats(arr[:]...)
		typename = "mat2"
		b = appendMat(b, typename, 2, 2, arr[:])
	case ms3.Mat3:
		arr := v.Array()
		err = checkFloats(arr[:]...)
		typename = "mat3"
		b = appendMat(b, typename, 3, 3, arr[:])
	case ms3.Mat4:
		arr := v.Array()
		err = checkFloats(arr[:]...)
		typename = "mat4"
		b = appendMat(b, typename, 4, 4, arr[:])
	case []float32:
		err = checkFloats(v...)
		typename, b = appendSlice(b, "float", len(v), func(b []byte, i int) []byte {
			return AppendFloat(b, '-', '.', v[i])
		})
	case []ms2.Vec:
		for i := 0; i < len(v) && err == nil; i++ {
			err = checkFloats(v[i].X, v[i].Y)
		}
		typename, b = appendSlice(b, "vec2", len(v), func(b []byte, i int) []byte {
			return appendCtor(b, "vec2", v[i].X, v[i].Y)
		})
	case []ms3.Vec:
		for i := 0; i < len(v) && err == nil; i++ {
			err = checkFloats(v[i].X, v[i].Y, v[i].Z)
		}
		typename, b = appendSlice(b, "vec3", len(v), func(b []byte, i int) []byte {
			return appendCtor(b, "vec3", v[i].X, v[i].Y, v[i].Z)
		})
	case nil:
		err = errors.New("nil literal value")
	default:
		err = fmt.Errorf("equivalent GLSL type not implemented for %T", value)
	}
	if err != nil {
		return b, "", err
	}
	return b, typename, nil
}

func checkFloats(vals ...float32) error {
	for _, v := range vals {
		if math32.IsNaN(v) {
			return errors.New("NaN has no GLSL literal")
		} else if math32.IsInf(v, 0) {
			return errors.New("infinity has no GLSL literal")
		}
	}
	return nil
}

func checkDoubles(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) {
			return errors.New("NaN has no GLSL literal")
		} else if math.IsInf(v, 0) {
			return errors.New("infinity has no GLSL literal")
		}
	}
	return nil
}

func appendCtor(b []byte, typename string, vals ...float32) []byte {
	b = append(b, typename...)
	b = append(b, '(')
	b = AppendFloats(b, ',', '-', '.', vals...)
	b = append(b, ')')
	return b
}

func appendDoubleCtor(b []byte, typename string, vals ...float64) []byte {
	b = append(b, typename...)
	b = append(b, '(')
	for i, v := range vals {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendDouble(b, v)
	}
	b = append(b, ')')
	return b
}

func appendDouble(b []byte, v float64) []byte {
	start := len(b)
	b = strconv.AppendFloat(b, v, 'f', -1, 64)
	if bytes.IndexByte(b[start:], '.') < 0 {
		b = append(b, '.')
	}
	return append(b, "lf"...)
}

func appendMat(b []byte, typename string, row, col int, arr []float32) []byte {
	b = append(b, typename...)
	b = append(b, '(')
	for i := 0; i < row; i++ {
		for j := 0; j < col; j++ {
			v := arr[j*row+i] // Column major access, as per OpenGL standard.
			b = AppendFloat(b, '-', '.', v)
			last := i == row-1 && j == col-1
			if !last {
				b = append(b, ',')
			}
		}
	}
	b = append(b, ')')
	return b
}

const maxLineLim = 500

// appendSlice appends an array constructor of nelem elements and returns the array typename.
func appendSlice(b []byte, elemType string, nelem int, appendElement func(b []byte, i int) []byte) (string, []byte) {
	typename := elemType + "[" + strconv.Itoa(nelem) + "]"
	lineStart := len(b)
	b = append(b, typename...)
	b = append(b, '(')
	for i := 0; i < nelem; i++ {
		last := i == nelem-1
		b = appendElement(b, i)
		if !last {
			b = append(b, ',')
			lineLen := len(b) - lineStart
			if lineLen > maxLineLim {
				b = append(b, '\n') // Break up line for VERY long arrays.
				lineStart = len(b)
			}
		}
	}
	b = append(b, ')')
	return typename, b
}

// AppendFloat appends the shortest representation of v with neg as the
// negative sign character and decimal as the decimal separator. A decimal
// separator is added to integral values so they parse as float literals.
// Very large or small magnitudes are written in exponent form, i.e: 1e-12.
func AppendFloat(b []byte, neg, decimal byte, v float32) []byte {
	start := len(b)
	b = strconv.AppendFloat(b, float64(v), 'g', -1, 32)
	idx := bytes.IndexByte(b[start:], '.')
	if idx < 0 && bytes.IndexAny(b[start:], "eIN") < 0 {
		idx = len(b) - start
		b = append(b, '.')
	}
	if decimal != '.' && idx >= 0 {
		b[start+idx] = decimal
	}
	if b[start] == '-' {
		b[start] = neg
	}
	return b
}

// AppendFloats appends floats separated by sep. See [AppendFloat].
func AppendFloats(b []byte, sep, neg, decimal byte, s ...float32) []byte {
	for i, v := range s {
		b = AppendFloat(b, neg, decimal, v)
		if sep != 0 && i != len(s)-1 {
			b = append(b, sep)
		}
	}
	return b
}
