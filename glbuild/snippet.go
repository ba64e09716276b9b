package glbuild

import (
	"strings"

	"github.com/soypat/glcompose"
)

// Snippet is anonymous GLSL text emitted verbatim, i.e: struct definitions.
// Identifiers it declares must be listed as static names so they are reserved
// from renamed fragments. A snippet with no static names is never emitted,
// only its dependencies are.
type Snippet struct {
	code   string
	static []string
	deps   []glcompose.Fragment
}

// NewSnippet returns a snippet of code declaring staticNames.
func NewSnippet(code string, staticNames ...string) *Snippet {
	return &Snippet{code: code, static: staticNames}
}

// NewDefine returns a snippet defining a preprocessor alias.
func NewDefine(alias, replacement string) *Snippet {
	code := AppendDefineDecl(nil, alias, replacement)
	return NewSnippet(strings.TrimSuffix(string(code), "\n"), alias)
}

// Require adds a fragment that must be emitted before the snippet.
func (s *Snippet) Require(deps ...glcompose.Fragment) *Snippet {
	s.deps = append(s.deps, deps...)
	return s
}

// PreferredName implements [glcompose.Fragment]. Snippets are anonymous.
func (s *Snippet) PreferredName() string { return "" }

func (s *Snippet) AppendStaticNames(dst []string) []string { return append(dst, s.static...) }

func (s *Snippet) AppendDependencies(dst []glcompose.Fragment, stage string) []glcompose.Fragment {
	return append(dst, s.deps...)
}

func (s *Snippet) AppendDefinition(dst []byte, names glcompose.Names) ([]byte, error) {
	return append(dst, s.code...), nil
}

func (s *Snippet) Visibility() glcompose.Visibility { return glcompose.Scoped }
