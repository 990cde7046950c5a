package types

import (
	"sync"

	"github.com/quartzvm/quartz/errors"
	"github.com/quartzvm/quartz/symbol"
)

// Registry is the canonical type registry: the single source of class
// reference identity. Defined classes resolve to their canonical loaded
// types; unknown names resolve to interned unloaded placeholders, so
// repeated resolution of the same name always yields the same pointer.
//
// Registry implements the resolver contract used by signature
// construction. Safe for concurrent use.
type Registry struct {
	defined  sync.Map // *symbol.Symbol -> Type
	unloaded sync.Map // *symbol.Symbol -> *ClassRef
}

func NewRegistry() *Registry {
	return &Registry{}
}

// DefineObjectClass registers name as a loaded object class and returns
// its canonical reference. Defining the same name again returns the
// existing reference.
func (r *Registry) DefineObjectClass(name *symbol.Symbol) *ClassRef {
	t, _ := r.defined.LoadOrStore(name, &ClassRef{name: name, loaded: true})
	ref, ok := t.(*ClassRef)
	if !ok {
		panic("types: " + name.String() + " already defined as a value class")
	}
	return ref
}

// DefineValueClass registers name as a loaded value class and returns
// its canonical type.
func (r *Registry) DefineValueClass(name *symbol.Symbol) *ValueClass {
	t, _ := r.defined.LoadOrStore(name, &ValueClass{name: name})
	vc, ok := t.(*ValueClass)
	if !ok {
		panic("types: " + name.String() + " already defined as an object class")
	}
	return vc
}

// Lookup returns the loaded type defined for name, if any.
func (r *Registry) Lookup(name *symbol.Symbol) (Type, bool) {
	t, ok := r.defined.Load(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Resolve returns the canonical type for name. Names without a loaded
// definition resolve to an interned unloaded placeholder: deferred
// resolution is valid data, not a failure. The accessing class and
// scope do not influence lookup in this registry; they exist for
// resolvers that honor per-scope visibility.
func (r *Registry) Resolve(name *symbol.Symbol, accessing *ClassRef, scope *symbol.Symbol) (Type, error) {
	if name == nil {
		return nil, errors.NilPointer(errors.PhaseResolve, "class name")
	}
	if t, ok := r.defined.Load(name); ok {
		return t.(Type), nil
	}
	c, _ := r.unloaded.LoadOrStore(name, &ClassRef{name: name})
	return c.(*ClassRef), nil
}
