package quartz

import (
	"github.com/quartzvm/quartz/symbol"
	"github.com/quartzvm/quartz/types"
)

// TypeResolver resolves reference-type names to canonical type handles.
//
// Resolution is deterministic for an already-loaded class: repeated calls
// with the same name return the same pointer. A class that exists but has
// not been materialized yet resolves to an unloaded placeholder rather
// than an error; only a class that cannot be located at all fails.
type TypeResolver interface {
	// Resolve looks up name on behalf of the accessing class. scope
	// identifies the constant-pool scope the name was read from and is
	// passed through opaquely; resolvers that do not distinguish scopes
	// may ignore it.
	Resolve(name *symbol.Symbol, accessing *types.ClassRef, scope *symbol.Symbol) (types.Type, error)
}

// MethodShape is a structured, fully resolved method descriptor, as
// produced for dynamically-typed invocations. Unlike descriptor text it
// carries its own slot accounting and never contains unloaded
// placeholders.
type MethodShape interface {
	// ParameterCount returns the number of parameters.
	ParameterCount() int

	// ParameterSlots returns the total machine-word footprint of the
	// parameters, excluding the return type.
	ParameterSlots() int

	// ParameterTypeAt returns the i'th parameter type and whether the
	// occurrence is statically never-null.
	ParameterTypeAt(i int) (types.Type, bool)

	// ReturnType returns the return type and whether the occurrence is
	// statically never-null.
	ReturnType() (types.Type, bool)
}
