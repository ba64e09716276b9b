package glcompose

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultVersion is the GLSL version emitted when [CompilerConfig.Version] is empty.
	DefaultVersion = "120"
	// DefaultHeader is the comment line every compiled stage starts with.
	DefaultHeader = "// Generated code by function composition"
)

// CompilerConfig configures a [Compiler]. The zero value is ready to use.
type CompilerConfig struct {
	// Version is the only GLSL version accepted in fragment #version directives
	// and the one written to each stage header, i.e: "120" or "330 core".
	Version string
	// Keywords are reserved identifiers never assigned to a fragment.
	// If nil [DefaultKeywords] is used.
	Keywords []string
	// Header is the comment line written at the top of each stage.
	Header string
}

// Compiler assembles fragment graphs into GLSL source code, one document
// per [Stage]. It renames fragments so that no two distinct fragments share a
// visible name while global fragments keep a single name across all stages.
//
// A Compiler is not safe for concurrent use.
type Compiler struct {
	version  string
	header   string
	keywords []string
	stages   []Stage

	// Results of last successful Compile.
	code  map[string]string
	names nameTable
}

// NewDefaultCompiler returns a Compiler with default configuration for the stages.
func NewDefaultCompiler(stages ...Stage) *Compiler {
	return NewCompiler(CompilerConfig{}, stages...)
}

// NewCompiler returns a Compiler for the given stages. Stages are compiled in
// argument order which determines which fragment keeps a contested name.
func NewCompiler(cfg CompilerConfig, stages ...Stage) *Compiler {
	c := &Compiler{
		version:  strings.Join(strings.Fields(cfg.Version), " "),
		header:   cfg.Header,
		keywords: cfg.Keywords,
		stages:   append([]Stage{}, stages...),
	}
	if c.version == "" {
		c.version = DefaultVersion
	}
	if c.header == "" {
		c.header = DefaultHeader
	}
	if c.keywords == nil {
		c.keywords = DefaultKeywords()
	}
	return c
}

// Compile builds the source code of every stage and returns a map of stage key to source.
// Results of a previous call are discarded. On error no stage is returned.
func (c *Compiler) Compile() (map[string]string, error) {
	c.code = nil
	c.names = nil
	log := logger()
	cp, err := c.collect()
	if err != nil {
		return nil, err
	}
	cp.resolve()
	names := cp.nameTable()
	code := make(map[string]string, len(c.stages))
	var buf []byte
	for i, stage := range c.stages {
		buf, err = c.emit(buf[:0], stage.Key, cp.order[i], cp, names)
		if err != nil {
			return nil, err
		}
		code[stage.Key] = string(buf)
		log.Debug("emitted stage", slog.String("stage", stage.Key), slog.Int("fragments", len(cp.order[i])), slog.Int("bytes", len(buf)))
	}
	c.code = code
	c.names = names
	return code, nil
}

// Lookup returns the name assigned to f by the last successful Compile.
// It returns an error wrapping [ErrNameNotAssigned] if f was not named.
func (c *Compiler) Lookup(f Fragment) (string, error) {
	return c.names.Lookup(f)
}

// Code returns the result of the last successful Compile or nil.
func (c *Compiler) Code() map[string]string {
	if c.code == nil {
		return nil
	}
	return maps.Clone(c.code)
}

// Names returns a copy of the fragment to name assignment of the last successful Compile.
func (c *Compiler) Names() map[Fragment]string {
	if c.names == nil {
		return nil
	}
	return maps.Clone(c.names)
}

// compilation holds the state of a single Compile call.
type compilation struct {
	frags []fragRecord
	ids   map[Fragment]fragID
	// order holds each stage's emitted fragments in dependency order.
	order [][]fragID
	// resolveOrder holds nameable fragments in order of first appearance.
	resolveOrder []fragID
	global       namespace
	local        []namespace
	// suffix counts collisions per preferred name.
	suffix   map[string]int
	assigned []string
}

type fragRecord struct {
	frag   Fragment
	name   string
	static []string
	vis    Visibility
	// stages the fragment is emitted in, ascending stage index.
	stages []int
}

func (rec *fragRecord) emitted() bool {
	return rec.name != "" || len(rec.static) > 0
}

const (
	unvisited uint8 = iota
	visiting
	visited
)

// collect walks every stage's dependency graph and builds the namespaces.
func (c *Compiler) collect() (*compilation, error) {
	cp := &compilation{
		ids:    make(map[Fragment]fragID),
		global: newNamespace(),
		local:  make([]namespace, len(c.stages)),
		order:  make([][]fragID, len(c.stages)),
		suffix: make(map[string]int),
	}
	for _, kw := range c.keywords {
		cp.global.names[kw] = reserved
	}
	seenKeys := make(map[string]struct{}, len(c.stages))
	for i, stage := range c.stages {
		if stage.Key == "" {
			return nil, fmt.Errorf("%w: empty stage key", ErrInvalidStage)
		} else if _, dup := seenKeys[stage.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate stage key %q", ErrInvalidStage, stage.Key)
		} else if stage.Root == nil {
			return nil, fmt.Errorf("%w: stage %q has nil root", ErrInvalidStage, stage.Key)
		}
		seenKeys[stage.Key] = struct{}{}
		cp.local[i] = newNamespace()
		state := make(map[fragID]uint8)
		err := cp.visit(i, stage.Key, stage.Root, state)
		if err != nil {
			return nil, err
		}
		logger().Debug("collected stage", slog.String("stage", stage.Key), slog.Int("fragments", len(cp.order[i])))
	}
	return cp, nil
}

// visit appends f's dependencies and then f to the stage's order, depth first.
func (cp *compilation) visit(stageIdx int, stage string, f Fragment, state map[fragID]uint8) error {
	id, err := cp.intern(f)
	if err != nil {
		return fmt.Errorf("stage %q: %w", stage, err)
	}
	switch state[id] {
	case visited:
		return nil
	case visiting:
		return fmt.Errorf("%w: stage %q: %s depends on itself", ErrDependencyCycle, stage, describe(f))
	}
	state[id] = visiting
	deps := f.AppendDependencies(nil, stage)
	for _, dep := range deps {
		err = cp.visit(stageIdx, stage, dep, state)
		if err != nil {
			return err
		}
	}
	state[id] = visited
	rec := &cp.frags[id]
	if !rec.emitted() {
		return nil // Anonymous helper with no static names.
	}
	cp.order[stageIdx] = append(cp.order[stageIdx], id)
	if rec.name != "" && len(rec.stages) == 0 {
		cp.resolveOrder = append(cp.resolveOrder, id)
	}
	rec.stages = append(rec.stages, stageIdx)
	return nil
}

// intern returns f's arena index, registering f and reserving its static names
// on first sight.
func (cp *compilation) intern(f Fragment) (fragID, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: nil fragment", ErrInvalidFragment)
	} else if !reflect.TypeOf(f).Comparable() {
		return 0, fmt.Errorf("%w: %T is not comparable, use a pointer type", ErrInvalidFragment, f)
	}
	if id, ok := cp.ids[f]; ok {
		return id, nil
	}
	id := fragID(len(cp.frags))
	rec := fragRecord{
		frag:   f,
		name:   f.PreferredName(),
		static: f.AppendStaticNames(nil),
		vis:    f.Visibility(),
	}
	for _, name := range rec.static {
		owner, taken := cp.global.owner(name)
		if !taken {
			cp.global.claim(name, id)
			continue
		} else if owner == id {
			continue // Declared twice by same fragment.
		} else if owner == reserved {
			return 0, fmt.Errorf("%w: %s declares reserved keyword %q", ErrStaticNameCollision, describe(f), name)
		}
		return 0, fmt.Errorf("%w: %q declared by both %s and %s", ErrStaticNameCollision, name, describe(cp.frags[owner].frag), describe(f))
	}
	cp.ids[f] = id
	cp.frags = append(cp.frags, rec)
	return id, nil
}

// resolve assigns a name to every nameable fragment.
func (cp *compilation) resolve() {
	cp.assigned = make([]string, len(cp.frags))
	log := logger()
	for _, id := range cp.resolveOrder {
		rec := &cp.frags[id]
		base := rec.name
		name := base
		for !cp.available(rec, name) {
			cp.suffix[base]++
			name = base + "_" + strconv.Itoa(cp.suffix[base])
		}
		if name != base {
			log.Debug("renamed fragment", slog.String("preferred", base), slog.String("assigned", name), slog.String("visibility", rec.vis.String()))
		}
		cp.assign(id, name)
	}
}

// available reports whether name is free for rec. Global fragments must not
// shadow a name used in any stage.
func (cp *compilation) available(rec *fragRecord, name string) bool {
	if cp.global.has(name) {
		return false
	}
	if rec.vis == Global {
		for _, ns := range cp.local {
			if ns.has(name) {
				return false
			}
		}
		return true
	}
	for _, stageIdx := range rec.stages {
		if cp.local[stageIdx].has(name) {
			return false
		}
	}
	return true
}

func (cp *compilation) assign(id fragID, name string) {
	rec := &cp.frags[id]
	if rec.vis == Global {
		cp.global.claim(name, id)
	} else {
		for _, stageIdx := range rec.stages {
			cp.local[stageIdx].claim(name, id)
		}
	}
	cp.assigned[id] = name
}

func (cp *compilation) nameTable() nameTable {
	names := make(nameTable, len(cp.resolveOrder))
	for _, id := range cp.resolveOrder {
		names[cp.frags[id].frag] = cp.assigned[id]
	}
	return names
}

var versionDirective = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*version[ \t]+(\d+)(?:[ \t]+(core|compatibility|es)\b)?`)

// emit appends the source of a single stage to dst.
func (c *Compiler) emit(dst []byte, stage string, order []fragID, cp *compilation, names Names) ([]byte, error) {
	dst = append(dst, c.header...)
	dst = append(dst, "\n#version "...)
	dst = append(dst, c.version...)
	dst = append(dst, '\n')
	var scratch []byte
	var err error
	for _, id := range order {
		rec := &cp.frags[id]
		scratch, err = rec.frag.AppendDefinition(scratch[:0], names)
		if err != nil {
			return dst, fmt.Errorf("stage %q: rendering %s: %w", stage, describe(rec.frag), err)
		} else if len(scratch) == 0 {
			continue
		}
		scratch, err = c.stripVersion(scratch)
		if err != nil {
			return dst, fmt.Errorf("stage %q: %s: %w", stage, describe(rec.frag), err)
		}
		dst = append(dst, '\n')
		dst = append(dst, scratch...)
	}
	return dst, nil
}

// stripVersion removes #version directives from code after checking they
// match the compiler's version.
func (c *Compiler) stripVersion(code []byte) ([]byte, error) {
	matches := versionDirective.FindAllSubmatch(code, -1)
	if matches == nil {
		return code, nil
	}
	for _, m := range matches {
		got := string(m[1])
		if len(m[2]) > 0 {
			got += " " + string(m[2])
		}
		if got != c.version {
			return code, fmt.Errorf("%w: fragment requests #version %s, only %s supported", ErrVersionMismatch, got, c.version)
		}
	}
	return versionDirective.ReplaceAll(code, nil), nil
}

// nameTable is the fragment to final name assignment of a compilation.
type nameTable map[Fragment]string

func (nt nameTable) Lookup(f Fragment) (string, error) {
	if f != nil && reflect.TypeOf(f).Comparable() {
		if name, ok := nt[f]; ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNameNotAssigned, describe(f))
}

func describe(f Fragment) string {
	if f == nil {
		return "<nil>"
	}
	if name := f.PreferredName(); name != "" {
		return fmt.Sprintf("%T %q", f, name)
	}
	return fmt.Sprintf("anonymous %T", f)
}

var _ Names = nameTable(nil)
