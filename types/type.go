package types

import (
	"sync"

	"github.com/quartzvm/quartz/symbol"
)

// Type is one resolved element of a signature. Types denoting the same
// resolved class or primitive are pointer-identical; the registry and
// the canonical primitive table enforce this, and signature equality
// depends on it.
type Type interface {
	Kind() Kind
	Name() string

	// SlotCount returns the machine-word footprint of one occurrence.
	SlotCount() int

	IsPrimitive() bool
	IsValueClass() bool

	// IsLoaded reports whether the class behind the type has been
	// materialized. Primitives and value classes are always loaded; an
	// unloaded ClassRef is a deferred-resolution placeholder.
	IsLoaded() bool

	// Unwrap strips a never-null wrapper. Total: every other type
	// returns itself.
	Unwrap() Type

	// IsNeverNull reports whether this occurrence is statically
	// guaranteed non-null.
	IsNeverNull() bool

	String() string
}

// PrimitiveType is a canonical primitive. One instance exists per kind;
// obtain them through Primitive.
type PrimitiveType struct {
	kind Kind
}

var primitives = [...]*PrimitiveType{
	KindBoolean: {KindBoolean},
	KindByte:    {KindByte},
	KindChar:    {KindChar},
	KindShort:   {KindShort},
	KindInt:     {KindInt},
	KindLong:    {KindLong},
	KindFloat:   {KindFloat},
	KindDouble:  {KindDouble},
	KindVoid:    {KindVoid},
}

// Primitive returns the canonical type for a primitive kind.
func Primitive(k Kind) *PrimitiveType {
	if !k.IsPrimitive() {
		panic("types: not a primitive kind: " + k.String())
	}
	return primitives[k]
}

func (p *PrimitiveType) Kind() Kind { return p.kind }
func (p *PrimitiveType) Name() string { return p.kind.String() }
func (p *PrimitiveType) SlotCount() int { return p.kind.SlotCount() }
func (p *PrimitiveType) IsPrimitive() bool { return true }
func (p *PrimitiveType) IsValueClass() bool { return false }
func (p *PrimitiveType) IsLoaded() bool { return true }
func (p *PrimitiveType) Unwrap() Type { return p }
func (p *PrimitiveType) IsNeverNull() bool { return false }
func (p *PrimitiveType) String() string { return p.kind.String() }

// ClassRef is a reference to an object class. An unloaded ClassRef is
// the deferred-resolution placeholder a resolver hands back for classes
// that have not been materialized yet; it is valid steady-state data.
// Only the registry creates ClassRefs, which keeps them canonical.
type ClassRef struct {
	name   *symbol.Symbol
	loaded bool
}

func (c *ClassRef) Kind() Kind { return KindObject }
func (c *ClassRef) Name() string { return c.name.String() }
func (c *ClassRef) Symbol() *symbol.Symbol { return c.name }
func (c *ClassRef) SlotCount() int { return 1 }
func (c *ClassRef) IsPrimitive() bool { return false }
func (c *ClassRef) IsValueClass() bool { return false }
func (c *ClassRef) IsLoaded() bool { return c.loaded }
func (c *ClassRef) Unwrap() Type { return c }
func (c *ClassRef) IsNeverNull() bool { return false }

func (c *ClassRef) String() string {
	if !c.loaded {
		return c.name.String() + " (unloaded)"
	}
	return c.name.String()
}

// ValueClass is a loaded inline class: instances may be represented
// without heap identity, and occurrences may be marked never-null.
// Unloaded classes are never ValueClass; a Q-named class that has not
// been materialized resolves to an unloaded ClassRef instead.
type ValueClass struct {
	name *symbol.Symbol
}

func (v *ValueClass) Kind() Kind { return KindValue }
func (v *ValueClass) Name() string { return v.name.String() }
func (v *ValueClass) Symbol() *symbol.Symbol { return v.name }
func (v *ValueClass) SlotCount() int { return 1 }
func (v *ValueClass) IsPrimitive() bool { return false }
func (v *ValueClass) IsValueClass() bool { return true }
func (v *ValueClass) IsLoaded() bool { return true }
func (v *ValueClass) Unwrap() Type { return v }
func (v *ValueClass) IsNeverNull() bool { return false }
func (v *ValueClass) String() string { return v.name.String() }

// NeverNullType decorates one occurrence of a value class as statically
// guaranteed non-null. It answers every query the inner type answers;
// only Unwrap and IsNeverNull tell them apart.
type NeverNullType struct {
	inner *ValueClass
}

func (n *NeverNullType) Kind() Kind { return n.inner.Kind() }
func (n *NeverNullType) Name() string { return n.inner.Name() }
func (n *NeverNullType) SlotCount() int { return n.inner.SlotCount() }
func (n *NeverNullType) IsPrimitive() bool { return false }
func (n *NeverNullType) IsValueClass() bool { return true }
func (n *NeverNullType) IsLoaded() bool { return true }
func (n *NeverNullType) Unwrap() Type { return n.inner }
func (n *NeverNullType) IsNeverNull() bool { return true }
func (n *NeverNullType) String() string { return n.inner.Name() + "!" }

var neverNullCache sync.Map // *ValueClass -> *NeverNullType

// NeverNull wraps a value class occurrence as statically null-free.
// Idempotent, and interned so repeated wrapping of the same value class
// yields the same wrapper.
func NeverNull(t Type) Type {
	if t.IsNeverNull() {
		return t
	}
	inner, ok := t.(*ValueClass)
	if !ok {
		panic("types: never-null wrapper requires a value class, got " + t.String())
	}
	if cached, ok := neverNullCache.Load(inner); ok {
		return cached.(*NeverNullType)
	}
	w, _ := neverNullCache.LoadOrStore(inner, &NeverNullType{inner: inner})
	return w.(*NeverNullType)
}
