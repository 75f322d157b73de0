package core

// Kind identifies the fixed-width type of a log argument. The kind
// determines both the number of payload bytes the argument occupies and
// the decoder used to render it back to text.
type Kind uint8

const (
	// KindInvalid is the zero value and never encodes.
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindFloat32
	KindFloat64
	// KindRune carries a Unicode code point and renders as the character
	// itself rather than its numeric value.
	KindRune
)

// kindWidths maps each kind to its payload byte width. int and uint are
// always encoded as 8 bytes so the wire width does not depend on the
// platform word size.
var kindWidths = [...]int{
	KindInvalid: 0,
	KindBool:    1,
	KindInt8:    1,
	KindInt16:   2,
	KindInt32:   4,
	KindInt64:   8,
	KindInt:     8,
	KindUint8:   1,
	KindUint16:  2,
	KindUint32:  4,
	KindUint64:  8,
	KindUint:    8,
	KindFloat32: 4,
	KindFloat64: 8,
	KindRune:    4,
}

// Width returns the number of payload bytes a value of this kind occupies.
// Invalid kinds have width 0.
func (k Kind) Width() int {
	if int(k) >= len(kindWidths) {
		return 0
	}
	return kindWidths[k]
}

// Valid reports whether k is a supported, encodable kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kindWidths)
}

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindInt:
		return "int"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUint:
		return "uint"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindRune:
		return "rune"
	default:
		return "invalid"
	}
}

// KindsEqual reports whether two kind sequences are identical.
func KindsEqual(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
