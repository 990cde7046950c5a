package signature

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/quartzvm/quartz"
	"github.com/quartzvm/quartz/descriptor"
	"github.com/quartzvm/quartz/errors"
	"github.com/quartzvm/quartz/symbol"
	"github.com/quartzvm/quartz/types"
)

// Signature is the resolved shape of one callable: the parameter types
// in declaration order followed by the return type, with the slot and
// count accounting calling-convention code depends on.
//
// A Signature is immutable once constructed and safe to share across
// concurrent readers. The accessing class participates in how names
// resolve, never in equality or ownership.
type Signature struct {
	accessing *types.ClassRef
	sym       *symbol.Symbol

	// elems holds count parameters followed by the return type.
	elems []types.Type
	count int
	slots int
}

// New resolves the descriptor sym on behalf of accessing. Each
// reference name goes through resolver with the given constant-pool
// scope; resolution may hand back unloaded placeholders, which is valid
// data. A malformed descriptor or a hard resolution failure aborts
// construction without publishing partial state.
//
// A nil accessing class or resolver is a caller bug, not a recoverable
// condition.
func New(accessing *types.ClassRef, scope *symbol.Symbol, sym *symbol.Symbol, resolver quartz.TypeResolver) (*Signature, error) {
	if accessing == nil {
		panic("signature: nil accessing class")
	}
	if resolver == nil {
		panic("signature: nil resolver")
	}
	if sym == nil {
		return nil, errors.NilPointer(errors.PhaseParse, "descriptor symbol")
	}

	stream, err := descriptor.NewStream(sym.String())
	if err != nil {
		return nil, err
	}

	log := Logger()
	elems := make([]types.Type, 0, 8)
	count := 0
	slots := 0
	for {
		tok, err := stream.Next()
		if err != nil {
			return nil, err
		}

		var typ types.Type
		if tok.Tag.IsPrimitive() {
			typ = types.Primitive(kindForTag(tok.Tag))
		} else {
			// Resolver failures propagate verbatim; retry policy, if
			// any, belongs to the class-loading layer.
			typ, err = resolver.Resolve(symbol.Intern(tok.Name), accessing, scope)
			if err != nil {
				return nil, err
			}
			if typ == nil {
				return nil, errors.ClassNotFound(tok.Name, accessing.Name())
			}
		}

		if tok.NeverNull && typ.IsValueClass() {
			typ = types.NeverNull(typ)
		}

		log.Debug("resolved signature element",
			zap.String("descriptor", sym.String()),
			zap.Stringer("type", typ),
			zap.Bool("return", tok.Return))

		elems = append(elems, typ)
		if tok.Return {
			break
		}
		slots += typ.SlotCount()
		count++
	}

	return &Signature{
		accessing: accessing,
		sym:       sym,
		elems:     elems,
		count:     count,
		slots:     slots,
	}, nil
}

// NewFromMethodShape builds a Signature from an already-structured
// descriptor instead of text. The shape carries its own slot
// accounting, which is trusted rather than recomputed, and its types
// are fully resolved by construction.
func NewFromMethodShape(accessing *types.ClassRef, sym *symbol.Symbol, shape quartz.MethodShape) (*Signature, error) {
	if accessing == nil {
		panic("signature: nil accessing class")
	}
	if shape == nil {
		panic("signature: nil method shape")
	}
	if sym == nil {
		return nil, errors.NilPointer(errors.PhaseResolve, "descriptor symbol")
	}

	count := shape.ParameterCount()
	if count < 0 {
		return nil, errors.InvalidShape(fmt.Sprintf("negative parameter count %d", count))
	}

	elems := make([]types.Type, 0, count+1)
	for i := 0; i < count; i++ {
		typ, neverNull := shape.ParameterTypeAt(i)
		if typ == nil {
			return nil, errors.InvalidShape(fmt.Sprintf("parameter %d has nil type", i))
		}
		if neverNull && typ.IsValueClass() {
			typ = types.NeverNull(typ)
		}
		elems = append(elems, typ)
	}

	ret, neverNull := shape.ReturnType()
	if ret == nil {
		return nil, errors.InvalidShape("nil return type")
	}
	if neverNull && ret.IsValueClass() {
		ret = types.NeverNull(ret)
	}
	elems = append(elems, ret)

	return &Signature{
		accessing: accessing,
		sym:       sym,
		elems:     elems,
		count:     count,
		slots:     shape.ParameterSlots(),
	}, nil
}

// ParameterCount returns the number of parameters, excluding the return
// type.
func (s *Signature) ParameterCount() int {
	return s.count
}

// SlotCount returns the total machine-word footprint of the parameters.
// The return type never contributes.
func (s *Signature) SlotCount() int {
	return s.slots
}

// Symbol returns the interned descriptor symbol.
func (s *Signature) Symbol() *symbol.Symbol {
	return s.sym
}

// AccessingClass returns the class on whose behalf the descriptor was
// resolved.
func (s *Signature) AccessingClass() *types.ClassRef {
	return s.accessing
}

// ReturnType returns the return type, unwrapped. Callers interested in
// the never-null property use ReturnsNeverNull.
func (s *Signature) ReturnType() types.Type {
	return s.elems[s.count].Unwrap()
}

// TypeAt returns the i'th parameter type, unwrapped.
func (s *Signature) TypeAt(i int) types.Type {
	s.checkIndex(i)
	return s.elems[i].Unwrap()
}

// IsNeverNullAt reports whether the i'th parameter occurrence is
// statically never-null.
func (s *Signature) IsNeverNullAt(i int) bool {
	s.checkIndex(i)
	return s.elems[i].IsNeverNull()
}

// ReturnsNeverNull reports whether the return occurrence is statically
// never-null.
func (s *Signature) ReturnsNeverNull() bool {
	return s.elems[s.count].IsNeverNull()
}

// MaybeReturnsNeverNull is true when ReturnsNeverNull is, and also when
// the return type is an unloaded class whose descriptor token carries
// the never-null marker. An unloaded class cannot confirm its wrapper
// state from the type alone, so the raw descriptor text decides; this
// is a deliberate conservative widening.
func (s *Signature) MaybeReturnsNeverNull() bool {
	ret := s.elems[s.count]
	if ret.IsNeverNull() {
		return true
	}
	if !ret.IsPrimitive() && !ret.IsLoaded() {
		return descriptor.HasNeverNullReturn(s.sym.String())
	}
	return false
}

// Equals reports whether the two signatures resolved to identical types
// for every position. Descriptor symbols are compared by handle first,
// then each parameter and the return type by canonical type identity.
// The accessing class never participates: signatures resolved from
// different classes to the same types are equal.
func (s *Signature) Equals(other *Signature) bool {
	if other == nil {
		return false
	}
	if s.sym != other.sym {
		return false
	}
	for i := 0; i < s.count; i++ {
		if s.TypeAt(i) != other.TypeAt(i) {
			return false
		}
	}
	return s.ReturnType() == other.ReturnType()
}

// String renders the signature for debugging: descriptor text plus the
// accessing class identity. The layout is cosmetic.
func (s *Signature) String() string {
	return fmt.Sprintf("<signature %s accessing=%s>", s.sym, s.accessing.Name())
}

func (s *Signature) checkIndex(i int) {
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("signature: parameter index %d out of range [0,%d)", i, s.count))
	}
}

// kindForTag maps a primitive descriptor tag to its type kind.
func kindForTag(tag descriptor.Tag) types.Kind {
	switch tag {
	case descriptor.TagBoolean:
		return types.KindBoolean
	case descriptor.TagByte:
		return types.KindByte
	case descriptor.TagChar:
		return types.KindChar
	case descriptor.TagShort:
		return types.KindShort
	case descriptor.TagInt:
		return types.KindInt
	case descriptor.TagLong:
		return types.KindLong
	case descriptor.TagFloat:
		return types.KindFloat
	case descriptor.TagDouble:
		return types.KindDouble
	case descriptor.TagVoid:
		return types.KindVoid
	}
	panic("signature: no kind for tag " + tag.String())
}
