package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartzvm/quartz"
	qerrors "github.com/quartzvm/quartz/errors"
	"github.com/quartzvm/quartz/symbol"
	"github.com/quartzvm/quartz/types"
)

// newWorld builds a registry with a loaded value class Point and a
// loaded accessing class Main.
func newWorld(t *testing.T) (*types.Registry, *types.ClassRef) {
	t.Helper()
	reg := types.NewRegistry()
	reg.DefineValueClass(symbol.Intern("Point"))
	owner := reg.DefineObjectClass(symbol.Intern("Main"))
	return reg, owner
}

func mustNew(t *testing.T, reg *types.Registry, owner *types.ClassRef, desc string) *Signature {
	t.Helper()
	sig, err := New(owner, nil, symbol.Intern(desc), reg)
	require.NoError(t, err)
	return sig
}

func TestNew_ValueParameterScenario(t *testing.T) {
	reg, owner := newWorld(t)

	// one int, one double, one never-null value-class Point, void return
	sig := mustNew(t, reg, owner, "(IDQPoint;)V")

	assert.Equal(t, 3, sig.ParameterCount())
	assert.Equal(t, 4, sig.SlotCount(), "1 (int) + 2 (double) + 1 (Point)")

	assert.Same(t, types.Primitive(types.KindInt), sig.TypeAt(0))
	assert.Same(t, types.Primitive(types.KindDouble), sig.TypeAt(1))
	assert.Equal(t, "Point", sig.TypeAt(2).Name())
	assert.Same(t, types.Primitive(types.KindVoid), sig.ReturnType())

	assert.False(t, sig.IsNeverNullAt(0))
	assert.False(t, sig.IsNeverNullAt(1))
	assert.True(t, sig.IsNeverNullAt(2))
	assert.False(t, sig.ReturnsNeverNull())
}

func TestNew_ElementCountInvariant(t *testing.T) {
	reg, owner := newWorld(t)

	for _, desc := range []string{"()V", "(I)V", "(IJD)I", "(QPoint;[JLjava/lang/Object;)QPoint;"} {
		sig := mustNew(t, reg, owner, desc)
		// every parameter is addressable, the return type sits past them
		for i := 0; i < sig.ParameterCount(); i++ {
			assert.NotNil(t, sig.TypeAt(i))
		}
		assert.NotNil(t, sig.ReturnType())
	}
}

func TestNew_SlotAccountingExcludesReturn(t *testing.T) {
	reg, owner := newWorld(t)

	// double return must not count
	sig := mustNew(t, reg, owner, "(II)D")
	assert.Equal(t, 2, sig.SlotCount())

	wide := mustNew(t, reg, owner, "(JD)V")
	assert.Equal(t, 4, wide.SlotCount())

	none := mustNew(t, reg, owner, "()J")
	assert.Equal(t, 0, none.SlotCount())
	assert.Equal(t, 0, none.ParameterCount())
}

func TestNew_RepeatedClassKeepsOrder(t *testing.T) {
	reg, owner := newWorld(t)
	str := reg.DefineObjectClass(symbol.Intern("java/lang/String"))

	sig := mustNew(t, reg, owner, "(Ljava/lang/String;ILjava/lang/String;)V")
	assert.Equal(t, 3, sig.ParameterCount())
	assert.Same(t, types.Type(str), sig.TypeAt(0))
	assert.Same(t, types.Primitive(types.KindInt), sig.TypeAt(1))
	assert.Same(t, types.Type(str), sig.TypeAt(2), "no de-duplication, order preserved")
}

func TestNew_UnloadedClassIsNotAnError(t *testing.T) {
	reg, owner := newWorld(t)

	sig := mustNew(t, reg, owner, "(Lcom/example/Later;)V")
	param := sig.TypeAt(0)
	assert.False(t, param.IsLoaded())
	assert.False(t, param.IsValueClass())
}

func TestNew_NeverNullRequiresLoadedValueClass(t *testing.T) {
	reg, owner := newWorld(t)

	// Unseen Q-named class resolves to an unloaded placeholder, so the
	// occurrence cannot be wrapped yet.
	sig := mustNew(t, reg, owner, "(QUnseen;)V")
	assert.False(t, sig.IsNeverNullAt(0))
	assert.False(t, sig.TypeAt(0).IsLoaded())
}

func TestNew_MalformedDescriptor(t *testing.T) {
	reg, owner := newWorld(t)

	for _, desc := range []string{"", "I", "(I", "(I)", "(X)V", "()VX", "(V)V"} {
		_, err := New(owner, nil, symbol.Intern(desc), reg)
		assert.Error(t, err, "descriptor %q", desc)
	}
}

type failingResolver struct{}

func (failingResolver) Resolve(name *symbol.Symbol, accessing *types.ClassRef, scope *symbol.Symbol) (types.Type, error) {
	return nil, qerrors.ClassNotFound(name.String(), accessing.Name())
}

func TestNew_ResolutionFailurePropagates(t *testing.T) {
	_, owner := newWorld(t)

	_, err := New(owner, nil, symbol.Intern("(LMissing;)V"), failingResolver{})
	require.Error(t, err)
	assert.ErrorIs(t, err, &qerrors.Error{Phase: qerrors.PhaseResolve, Kind: qerrors.KindClassNotFound})
}

func TestNew_NilAccessingClassPanics(t *testing.T) {
	reg, _ := newWorld(t)
	assert.Panics(t, func() {
		_, _ = New(nil, nil, symbol.Intern("()V"), reg)
	})
}

func TestTypeAt_BoundsPanics(t *testing.T) {
	reg, owner := newWorld(t)
	sig := mustNew(t, reg, owner, "(I)V")

	assert.Panics(t, func() { sig.TypeAt(1) }, "return type is not addressable as a parameter")
	assert.Panics(t, func() { sig.TypeAt(-1) })
	assert.Panics(t, func() { sig.IsNeverNullAt(1) })
}

func TestReturnsNeverNull(t *testing.T) {
	reg, owner := newWorld(t)

	loaded := mustNew(t, reg, owner, "(I)QPoint;")
	assert.True(t, loaded.ReturnsNeverNull())
	assert.True(t, loaded.MaybeReturnsNeverNull())
	// queries always see the unwrapped type
	assert.Equal(t, "Point", loaded.ReturnType().Name())
	assert.False(t, loaded.ReturnType().IsNeverNull())

	object := mustNew(t, reg, owner, "(I)Ljava/lang/Object;")
	assert.False(t, object.ReturnsNeverNull())
	assert.False(t, object.MaybeReturnsNeverNull())

	void := mustNew(t, reg, owner, "()V")
	assert.False(t, void.ReturnsNeverNull())
	assert.False(t, void.MaybeReturnsNeverNull())
}

func TestMaybeReturnsNeverNull_UnloadedFallback(t *testing.T) {
	reg, owner := newWorld(t)

	// The return class is unloaded: the type cannot confirm never-null,
	// so the raw descriptor text decides.
	sig := mustNew(t, reg, owner, "(I)QUnseenValue;")
	assert.False(t, sig.ReturnsNeverNull())
	assert.True(t, sig.MaybeReturnsNeverNull())

	// Unloaded object-named return: text carries no marker.
	plain := mustNew(t, reg, owner, "(I)Lcom/example/Later;")
	assert.False(t, plain.MaybeReturnsNeverNull())
}

func TestMaybeNeverNull_ParameterAsymmetry(t *testing.T) {
	reg, owner := newWorld(t)

	// The text fallback applies to the return type only. An unloaded
	// Q-named parameter stays not-never-null even though its token
	// carries the marker; callers get no Maybe variant for parameters.
	sig := mustNew(t, reg, owner, "(QUnseen;)QUnseen;")
	assert.False(t, sig.IsNeverNullAt(0))
	assert.True(t, sig.MaybeReturnsNeverNull())
}

func TestEquals_IndependentOfAccessingContext(t *testing.T) {
	reg := types.NewRegistry()
	reg.DefineObjectClass(symbol.Intern("java/lang/String"))
	classA := reg.DefineObjectClass(symbol.Intern("A"))
	classB := reg.DefineObjectClass(symbol.Intern("B"))

	desc := symbol.Intern("(Ljava/lang/String;)I")
	fromA, err := New(classA, nil, desc, reg)
	require.NoError(t, err)
	fromB, err := New(classB, nil, desc, reg)
	require.NoError(t, err)

	assert.True(t, fromA.Equals(fromB))
	assert.True(t, fromB.Equals(fromA))
	assert.NotSame(t, fromA, fromB)
}

func TestEquals_DifferentResolvedTypes(t *testing.T) {
	// Two registries resolve String to different canonical objects,
	// simulating a resolution anomaly: same text, different types.
	regA := types.NewRegistry()
	regB := types.NewRegistry()
	regA.DefineObjectClass(symbol.Intern("java/lang/String"))
	regB.DefineObjectClass(symbol.Intern("java/lang/String"))
	ownerA := regA.DefineObjectClass(symbol.Intern("A"))
	ownerB := regB.DefineObjectClass(symbol.Intern("B"))

	desc := symbol.Intern("(Ljava/lang/String;)I")
	fromA, err := New(ownerA, nil, desc, regA)
	require.NoError(t, err)
	fromB, err := New(ownerB, nil, desc, regB)
	require.NoError(t, err)

	assert.False(t, fromA.Equals(fromB))
}

func TestEquals_DifferentDescriptors(t *testing.T) {
	reg, owner := newWorld(t)

	a := mustNew(t, reg, owner, "(I)V")
	b := mustNew(t, reg, owner, "(J)V")
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
	assert.True(t, a.Equals(a))
}

func TestEquals_DifferentReturnType(t *testing.T) {
	regA := types.NewRegistry()
	regB := types.NewRegistry()
	ownerA := regA.DefineObjectClass(symbol.Intern("A"))
	ownerB := regB.DefineObjectClass(symbol.Intern("B"))
	regA.DefineObjectClass(symbol.Intern("Ret"))
	regB.DefineObjectClass(symbol.Intern("Ret"))

	desc := symbol.Intern("()LRet;")
	fromA, err := New(ownerA, nil, desc, regA)
	require.NoError(t, err)
	fromB, err := New(ownerB, nil, desc, regB)
	require.NoError(t, err)

	// parameters (none) agree, return types are distinct objects
	assert.False(t, fromA.Equals(fromB))
}

// testShape is a structured descriptor with its own slot accounting.
type testShape struct {
	params []types.Type
	nn     []bool
	ret    types.Type
	retNN  bool
	slots  int
}

func (s *testShape) ParameterCount() int { return len(s.params) }
func (s *testShape) ParameterSlots() int { return s.slots }
func (s *testShape) ParameterTypeAt(i int) (types.Type, bool) {
	return s.params[i], s.nn[i]
}
func (s *testShape) ReturnType() (types.Type, bool) { return s.ret, s.retNN }

var _ quartz.MethodShape = (*testShape)(nil)

func TestNewFromMethodShape_MatchesTextualPath(t *testing.T) {
	reg, owner := newWorld(t)
	point, ok := reg.Lookup(symbol.Intern("Point"))
	require.True(t, ok)

	desc := symbol.Intern("(JQPoint;)QPoint;")
	textual := mustNew(t, reg, owner, desc.String())

	shape := &testShape{
		params: []types.Type{types.Primitive(types.KindLong), point},
		nn:     []bool{false, true},
		ret:    point,
		retNN:  true,
		slots:  3,
	}
	structured, err := NewFromMethodShape(owner, desc, shape)
	require.NoError(t, err)

	assert.Equal(t, textual.ParameterCount(), structured.ParameterCount())
	assert.Equal(t, textual.SlotCount(), structured.SlotCount())
	assert.True(t, textual.Equals(structured))
	assert.True(t, structured.Equals(textual))

	assert.True(t, structured.IsNeverNullAt(1))
	assert.False(t, structured.IsNeverNullAt(0))
	assert.True(t, structured.ReturnsNeverNull())
	assert.Same(t, point, structured.ReturnType())
}

func TestNewFromMethodShape_InvalidShape(t *testing.T) {
	_, owner := newWorld(t)

	shape := &testShape{
		params: []types.Type{nil},
		nn:     []bool{false},
		ret:    types.Primitive(types.KindVoid),
	}
	_, err := NewFromMethodShape(owner, symbol.Intern("(LBroken;)V"), shape)
	require.Error(t, err)
	assert.ErrorIs(t, err, &qerrors.Error{Phase: qerrors.PhaseResolve, Kind: qerrors.KindInvalidShape})
}

func TestString_DebugRendering(t *testing.T) {
	reg, owner := newWorld(t)
	sig := mustNew(t, reg, owner, "(I)V")

	s := sig.String()
	assert.Contains(t, s, "(I)V")
	assert.Contains(t, s, "Main")
}

func TestSymbolAndAccessor(t *testing.T) {
	reg, owner := newWorld(t)
	desc := symbol.Intern("(D)J")
	sig := mustNew(t, reg, owner, desc.String())

	assert.Same(t, desc, sig.Symbol())
	assert.Same(t, owner, sig.AccessingClass())
}
