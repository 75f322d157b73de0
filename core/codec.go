package core

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrUnsupportedKind is returned when an argument kind has no fixed-width
// encode/decode binding. This indicates a programming error at the call
// site and is surfaced at registration, never at encode time.
var ErrUnsupportedKind = errors.New("core: unsupported argument kind")

// SizeOf returns the total number of payload bytes the argument tuple
// occupies. Pure; no side effects.
func SizeOf(args []Arg) int {
	n := 0
	for _, a := range args {
		n += a.Kind.Width()
	}
	return n
}

// Encode writes each argument's raw bits in declaration order into buf
// using little-endian byte order and returns the number of bytes written.
// The caller must guarantee len(buf) >= SizeOf(args); the record store
// enforces this by rejecting oversized tuples before any write occurs.
func Encode(buf []byte, args []Arg) int {
	n := 0
	for _, a := range args {
		switch a.Kind.Width() {
		case 1:
			buf[n] = byte(a.bits)
		case 2:
			binary.LittleEndian.PutUint16(buf[n:], uint16(a.bits))
		case 4:
			binary.LittleEndian.PutUint32(buf[n:], uint32(a.bits))
		case 8:
			binary.LittleEndian.PutUint64(buf[n:], a.bits)
		}
		n += a.Kind.Width()
	}
	return n
}

// DecodeAppend decodes the value of kind k at the start of payload,
// appends its text rendering to buf, and returns the number of payload
// bytes consumed. A payload shorter than the kind's width means the
// record header lied about its length; the caller treats that as a
// corrupt slot.
func DecodeAppend(buf *bytes.Buffer, k Kind, payload []byte) (int, error) {
	w := k.Width()
	if w == 0 {
		return 0, ErrUnsupportedKind
	}
	if len(payload) < w {
		return 0, errors.Errorf("core: payload truncated: need %d bytes for %s, have %d", w, k, len(payload))
	}

	var bits uint64
	switch w {
	case 1:
		bits = uint64(payload[0])
	case 2:
		bits = uint64(binary.LittleEndian.Uint16(payload))
	case 4:
		bits = uint64(binary.LittleEndian.Uint32(payload))
	case 8:
		bits = binary.LittleEndian.Uint64(payload)
	}

	scratch := buf.AvailableBuffer()
	switch k {
	case KindBool:
		scratch = strconv.AppendBool(scratch, bits == 1)
	case KindInt8:
		scratch = strconv.AppendInt(scratch, int64(int8(bits)), 10)
	case KindInt16:
		scratch = strconv.AppendInt(scratch, int64(int16(bits)), 10)
	case KindInt32:
		scratch = strconv.AppendInt(scratch, int64(int32(bits)), 10)
	case KindInt64, KindInt:
		scratch = strconv.AppendInt(scratch, int64(bits), 10)
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint:
		scratch = strconv.AppendUint(scratch, bits, 10)
	case KindFloat32:
		scratch = strconv.AppendFloat(scratch, float64(math.Float32frombits(uint32(bits))), 'g', -1, 32)
	case KindFloat64:
		scratch = strconv.AppendFloat(scratch, math.Float64frombits(bits), 'g', -1, 64)
	case KindRune:
		scratch = utf8.AppendRune(scratch, rune(int32(bits)))
	default:
		return 0, ErrUnsupportedKind
	}
	buf.Write(scratch)
	return w, nil
}
