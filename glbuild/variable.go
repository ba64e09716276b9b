package glbuild

import (
	"fmt"

	"github.com/soypat/glcompose"
)

// Storage qualifiers of a [Variable].
const (
	Uniform   = "uniform"
	Attribute = "attribute"
	Varying   = "varying"
	Const     = "const"
)

// Variable is a global GLSL variable declaration such as a uniform or varying.
// Variables are shared state between stages and keep one name in all of them.
type Variable struct {
	qualifier string
	typename  string
	name      string
	literal   []byte
}

// NewVariable returns a declaration of a variable with a storage qualifier,
// i.e: NewVariable(Uniform, "mat4", "u_model") declares "uniform mat4 u_model;".
func NewVariable(qualifier, typename, name string) *Variable {
	return &Variable{qualifier: qualifier, typename: typename, name: name}
}

// NewUniform returns a uniform variable declaration.
func NewUniform(typename, name string) *Variable {
	return NewVariable(Uniform, typename, name)
}

// NewAttribute returns a vertex attribute declaration.
func NewAttribute(typename, name string) *Variable {
	return NewVariable(Attribute, typename, name)
}

// NewVarying returns a varying declaration, written by the vertex stage and
// read by the fragment stage.
func NewVarying(typename, name string) *Variable {
	return NewVariable(Varying, typename, name)
}

// NewConst returns a constant whose type is inferred from value. See [AppendLiteral]
// for the supported value types.
func NewConst(name string, value any) (*Variable, error) {
	literal, typename, err := AppendLiteral(nil, value)
	if err != nil {
		return nil, fmt.Errorf("const %s: %w", name, err)
	}
	return &Variable{qualifier: Const, typename: typename, name: name, literal: literal}, nil
}

// Qualifier returns the storage qualifier of the variable.
func (v *Variable) Qualifier() string { return v.qualifier }

// Type returns the GLSL type of the variable.
func (v *Variable) Type() string { return v.typename }

// PreferredName implements [glcompose.Fragment].
func (v *Variable) PreferredName() string { return v.name }

// AppendStaticNames implements [glcompose.Fragment]. Variables have no static names.
func (v *Variable) AppendStaticNames(dst []string) []string { return dst }

// AppendDependencies implements [glcompose.Fragment]. Variables have no dependencies.
func (v *Variable) AppendDependencies(dst []glcompose.Fragment, stage string) []glcompose.Fragment {
	return dst
}

// AppendDefinition appends the variable declaration. Implements [glcompose.Fragment].
func (v *Variable) AppendDefinition(dst []byte, names glcompose.Names) ([]byte, error) {
	name, err := names.Lookup(v)
	if err != nil {
		return dst, err
	}
	dst = append(dst, v.qualifier...)
	dst = append(dst, ' ')
	dst = append(dst, v.typename...)
	dst = append(dst, ' ')
	dst = append(dst, name...)
	if len(v.literal) > 0 {
		dst = append(dst, " = "...)
		dst = append(dst, v.literal...)
	}
	dst = append(dst, ';')
	return dst, nil
}

// Visibility implements [glcompose.Fragment].
func (v *Variable) Visibility() glcompose.Visibility { return glcompose.Global }
