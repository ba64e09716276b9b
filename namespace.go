package glcompose

// fragID indexes a fragment in the per-compilation arena.
type fragID int32

// reserved marks names with no owning fragment, i.e: keywords.
const reserved fragID = -1

// namespace maps visible names to the fragment that owns them.
type namespace struct {
	names map[string]fragID
}

func newNamespace() namespace {
	return namespace{names: make(map[string]fragID)}
}

func (ns namespace) has(name string) bool {
	_, ok := ns.names[name]
	return ok
}

func (ns namespace) owner(name string) (fragID, bool) {
	id, ok := ns.names[name]
	return id, ok
}

// claim inserts name owned by id. It panics if the name is taken since callers
// must check availability first.
func (ns namespace) claim(name string, id fragID) {
	if _, taken := ns.names[name]; taken {
		panic("glcompose: claim of taken name " + name)
	}
	ns.names[name] = id
}
