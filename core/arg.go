package core

import "math"

// Arg is a single log argument: a kind tag plus the value's raw bits.
// Packing every supported type into one uint64 keeps the hot path free of
// interface boxing; an Arg never causes its value to escape to the heap.
type Arg struct {
	Kind Kind
	bits uint64
}

// Bool wraps a bool value.
func Bool(v bool) Arg {
	var b uint64
	if v {
		b = 1
	}
	return Arg{Kind: KindBool, bits: b}
}

// Int wraps an int value. It always occupies 8 payload bytes regardless
// of the platform word size.
func Int(v int) Arg {
	return Arg{Kind: KindInt, bits: uint64(int64(v))}
}

// Int8 wraps an int8 value.
func Int8(v int8) Arg {
	return Arg{Kind: KindInt8, bits: uint64(uint8(v))}
}

// Int16 wraps an int16 value.
func Int16(v int16) Arg {
	return Arg{Kind: KindInt16, bits: uint64(uint16(v))}
}

// Int32 wraps an int32 value.
func Int32(v int32) Arg {
	return Arg{Kind: KindInt32, bits: uint64(uint32(v))}
}

// Int64 wraps an int64 value.
func Int64(v int64) Arg {
	return Arg{Kind: KindInt64, bits: uint64(v)}
}

// Uint wraps a uint value.
func Uint(v uint) Arg {
	return Arg{Kind: KindUint, bits: uint64(v)}
}

// Uint8 wraps a uint8 value. Byte is an alias for this constructor.
func Uint8(v uint8) Arg {
	return Arg{Kind: KindUint8, bits: uint64(v)}
}

// Uint16 wraps a uint16 value.
func Uint16(v uint16) Arg {
	return Arg{Kind: KindUint16, bits: uint64(v)}
}

// Uint32 wraps a uint32 value.
func Uint32(v uint32) Arg {
	return Arg{Kind: KindUint32, bits: uint64(v)}
}

// Uint64 wraps a uint64 value.
func Uint64(v uint64) Arg {
	return Arg{Kind: KindUint64, bits: v}
}

// Byte wraps a byte value; it renders as an unsigned number. Use Rune for
// character rendering.
func Byte(v byte) Arg {
	return Uint8(v)
}

// Float32 wraps a float32 value.
func Float32(v float32) Arg {
	return Arg{Kind: KindFloat32, bits: uint64(math.Float32bits(v))}
}

// Float64 wraps a float64 value.
func Float64(v float64) Arg {
	return Arg{Kind: KindFloat64, bits: math.Float64bits(v)}
}

// Rune wraps a Unicode code point. Unlike Int32 it renders as the
// character itself, e.g. Rune('a') renders "a", not "97".
func Rune(v rune) Arg {
	return Arg{Kind: KindRune, bits: uint64(uint32(v))}
}
