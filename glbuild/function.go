package glbuild

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soypat/glcompose"
)

// Function is a GLSL function definition whose identifiers may be templated.
// A $identifier in the function signature is the function's own renamable
// name. Every other $identifier must be bound to a dependency with [Function.Bind]
// and is replaced by that dependency's final name when compiled:
//
//	vec4 $transform(vec4 pos) { return $projection * pos; }
//
// A function whose signature name is not templated, such as a stage's
// "void main()", keeps the name written in code. Compiling fails if such a
// function loses its name to another fragment of the same stage.
type Function struct {
	code      string
	self      string
	templated bool
	static    []string
	// refs are the template references other than self in order of first appearance.
	refs  []string
	binds map[string]glcompose.Fragment
	extra []glcompose.Fragment
	errs  []error
}

// NewFunction parses code and returns a Function with no bound references.
func NewFunction(code string) (*Function, error) {
	name, err := ParseFunctionName(code)
	if err != nil {
		return nil, err
	}
	fn := &Function{
		code:  code,
		binds: make(map[string]glcompose.Fragment),
	}
	fn.self = strings.TrimPrefix(name, "$")
	fn.templated = fn.self != name
	forEachRef(code, func(ref string, _, _ int) error {
		if ref != fn.self && !fn.hasRef(ref) {
			fn.refs = append(fn.refs, ref)
		}
		return nil
	})
	return fn, nil
}

// MustFunction is like [NewFunction] but panics on error.
// Intended for package level GLSL libraries.
func MustFunction(code string) *Function {
	fn, err := NewFunction(code)
	if err != nil {
		panic(err)
	}
	return fn
}

func (fn *Function) hasRef(ref string) bool {
	for _, r := range fn.refs {
		if r == ref {
			return true
		}
	}
	return false
}

// Bind sets the fragment whose name replaces $ref in the function's code.
// The leading $ in ref is optional. Errors are accumulated and reported by [Function.Err].
func (fn *Function) Bind(ref string, dep glcompose.Fragment) *Function {
	ref = strings.TrimPrefix(ref, "$")
	switch {
	case dep == nil:
		fn.errs = append(fn.errs, fmt.Errorf("bind nil fragment to $%s", ref))
	case ref == fn.self:
		fn.errs = append(fn.errs, fmt.Errorf("cannot bind function's own name $%s", ref))
	case !fn.hasRef(ref):
		fn.errs = append(fn.errs, fmt.Errorf("function has no template reference $%s", ref))
	default:
		fn.binds[ref] = dep
	}
	return fn
}

// Require adds a dependency that is not referenced by a template in the code.
func (fn *Function) Require(dep glcompose.Fragment) *Function {
	if dep == nil {
		fn.errs = append(fn.errs, errors.New("require nil fragment"))
		return fn
	}
	fn.extra = append(fn.extra, dep)
	return fn
}

// Static declares additional identifiers the function introduces that are never renamed.
func (fn *Function) Static(names ...string) *Function {
	fn.static = append(fn.static, names...)
	return fn
}

// Err returns the accumulated binding errors and unbound references.
func (fn *Function) Err() error {
	errs := fn.errs
	for _, ref := range fn.refs {
		if _, ok := fn.binds[ref]; !ok {
			errs = append(errs, fmt.Errorf("unbound template reference $%s", ref))
		}
	}
	return errors.Join(errs...)
}

// PreferredName returns the signature name without $. Implements [glcompose.Fragment].
func (fn *Function) PreferredName() string { return fn.self }

// AppendStaticNames implements [glcompose.Fragment].
func (fn *Function) AppendStaticNames(dst []string) []string {
	return append(dst, fn.static...)
}

// AppendDependencies appends bound references in order of appearance in the
// code followed by required fragments. Implements [glcompose.Fragment].
func (fn *Function) AppendDependencies(dst []glcompose.Fragment, stage string) []glcompose.Fragment {
	for _, ref := range fn.refs {
		if dep, ok := fn.binds[ref]; ok {
			dst = append(dst, dep)
		}
	}
	return append(dst, fn.extra...)
}

// AppendDefinition appends the function code with template references
// replaced by final names. Implements [glcompose.Fragment].
func (fn *Function) AppendDefinition(dst []byte, names glcompose.Names) ([]byte, error) {
	if err := fn.Err(); err != nil {
		return dst, err
	}
	if !fn.templated {
		name, err := names.Lookup(fn)
		if err != nil {
			return dst, err
		} else if name != fn.self {
			return dst, fmt.Errorf("function %s was renamed to %s, write its name as $%s to allow renaming", fn.self, name, fn.self)
		}
	}
	last := 0
	err := forEachRef(fn.code, func(ref string, start, end int) error {
		var target glcompose.Fragment = fn
		if ref != fn.self {
			target = fn.binds[ref]
		}
		name, err := names.Lookup(target)
		if err != nil {
			return fmt.Errorf("$%s: %w", ref, err)
		}
		dst = append(dst, fn.code[last:start]...)
		dst = append(dst, name...)
		last = end
		return nil
	})
	if err != nil {
		return dst, err
	}
	dst = append(dst, fn.code[last:]...)
	return dst, nil
}

// Visibility returns [glcompose.Scoped]: functions may be defined differently in each stage.
func (fn *Function) Visibility() glcompose.Visibility { return glcompose.Scoped }
