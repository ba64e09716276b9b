package glcompose

// Visibility determines which namespace a fragment's name lives in.
type Visibility uint8

const (
	// Scoped fragments are named per stage. Two scoped fragments used in
	// different stages may share a name.
	Scoped Visibility = iota
	// Global fragments represent state shared between stages, such as uniforms
	// and varyings, and must carry the same name in every stage.
	Global
)

func (v Visibility) String() string {
	switch v {
	case Scoped:
		return "scoped"
	case Global:
		return "global"
	}
	return "Visibility(?)"
}

// Fragment is a reusable unit of GLSL source code. Fragments are compared by
// identity so implementations should be pointer types.
type Fragment interface {
	// PreferredName returns the name the fragment would like to be declared as.
	// Anonymous fragments return the empty string and are never named.
	PreferredName() string
	// AppendStaticNames appends identifiers the fragment declares that are
	// never renamed. They reserve a slot in the global namespace.
	AppendStaticNames(dst []string) []string
	// AppendDependencies appends the fragments this fragment needs in stage,
	// in a deterministic order.
	AppendDependencies(dst []Fragment, stage string) []Fragment
	// AppendDefinition appends the fragment's source text to dst using names
	// to resolve the final name of itself and its dependencies. Appending
	// nothing means the fragment has nothing to emit.
	AppendDefinition(dst []byte, names Names) ([]byte, error)
	// Visibility returns the fragment's visibility class.
	Visibility() Visibility
}

// Names resolves the final name assigned to a fragment during compilation.
type Names interface {
	Lookup(f Fragment) (string, error)
}

// Stage is a named compilation unit, i.e: "vert" or "frag", with a root fragment.
type Stage struct {
	Key  string
	Root Fragment
}
