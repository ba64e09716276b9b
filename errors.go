package glcompose

import "errors"

var (
	// ErrVersionMismatch is returned when a fragment embeds a #version directive
	// different from the version the compiler emits.
	ErrVersionMismatch = errors.New("glsl version mismatch")
	// ErrStaticNameCollision is returned when two distinct fragments declare the
	// same static name, or a static name is a reserved keyword.
	ErrStaticNameCollision = errors.New("static name collision")
	// ErrNameNotAssigned is returned by Lookup for fragments that were not named
	// by the last compilation.
	ErrNameNotAssigned = errors.New("name not assigned")
	// ErrDependencyCycle is returned when a fragment depends on itself, directly or transitively.
	ErrDependencyCycle = errors.New("dependency cycle")
	// ErrInvalidStage is returned for empty or duplicate stage keys and nil roots.
	ErrInvalidStage = errors.New("invalid stage")
	// ErrInvalidFragment is returned for nil or non-comparable fragments.
	ErrInvalidFragment = errors.New("invalid fragment")
)
