package types

type Kind uint8

const (
	KindBoolean Kind = iota
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindVoid
	KindObject
	KindValue
)

var kindNames = [...]string{
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindChar:    "char",
	KindShort:   "short",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindVoid:    "void",
	KindObject:  "object",
	KindValue:   "value",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsPrimitive() bool {
	return k <= KindVoid
}

// SlotCount returns the machine-word footprint of one occurrence of the
// kind. Wide primitives take two words; void takes none.
func (k Kind) SlotCount() int {
	switch k {
	case KindLong, KindDouble:
		return 2
	case KindVoid:
		return 0
	default:
		return 1
	}
}
