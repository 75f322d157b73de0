package format

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"github.com/latelog/latelog/core"
)

func TestNewDescriptor_ArityEnforcement(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		kinds   []core.Kind
		wantErr bool
	}{
		{"matching single", "value=%", []core.Kind{core.KindInt}, false},
		{"matching triple", "a=% b=% c=%", []core.Kind{core.KindInt, core.KindRune, core.KindFloat64}, false},
		{"no placeholders no args", "plain message", nil, false},
		{"too few args", "a=% b=%", []core.Kind{core.KindInt}, true},
		{"too many args", "a=%", []core.Kind{core.KindInt, core.KindInt}, true},
		{"placeholder without args", "%", nil, true},
		{"args without placeholder", "plain", []core.Kind{core.KindBool}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDescriptor(tt.format, tt.kinds...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDescriptor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !errors.Is(err, ErrArityMismatch) {
				t.Errorf("expected ErrArityMismatch, got %v", err)
			}
		})
	}
}

func TestNewDescriptor_UnsupportedKind(t *testing.T) {
	_, err := NewDescriptor("v=%", core.KindInvalid)
	if !errors.Is(err, core.ErrUnsupportedKind) {
		t.Errorf("expected core.ErrUnsupportedKind, got %v", err)
	}
}

func TestDescriptor_Render(t *testing.T) {
	d, err := NewDescriptor("Hello int=% char=% float=%",
		core.KindInt, core.KindRune, core.KindFloat64)
	if err != nil {
		t.Fatalf("NewDescriptor() error: %v", err)
	}

	args := []core.Arg{core.Int(1), core.Rune('a'), core.Float64(42.3)}
	payload := make([]byte, core.SizeOf(args))
	core.Encode(payload, args)

	var buf bytes.Buffer
	if err := d.Render(payload, &buf); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := "Hello int=1 char=a float=42.3"
	if buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}
}

func TestDescriptor_RenderRoundTrip(t *testing.T) {
	// Encoding then rendering must match a straightforward fmt reference.
	tests := []struct {
		format string
		args   []core.Arg
		ref    string
	}{
		{"n=%", []core.Arg{core.Int(-42)}, fmt.Sprintf("n=%d", -42)},
		{"% and %", []core.Arg{core.Bool(true), core.Bool(false)}, fmt.Sprintf("%t and %t", true, false)},
		{"pi≈%", []core.Arg{core.Float32(3.25)}, fmt.Sprintf("pi≈%g", float32(3.25))},
		{"u=% r=%", []core.Arg{core.Uint64(1 << 63), core.Rune('ß')}, fmt.Sprintf("u=%d r=%c", uint64(1)<<63, 'ß')},
		{"trailing % text", []core.Arg{core.Int8(-1)}, fmt.Sprintf("trailing %d text", -1)},
		{"no args at all", nil, "no args at all"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			kinds := make([]core.Kind, len(tt.args))
			for i, a := range tt.args {
				kinds[i] = a.Kind
			}
			d, err := NewDescriptor(tt.format, kinds...)
			if err != nil {
				t.Fatalf("NewDescriptor() error: %v", err)
			}

			payload := make([]byte, core.SizeOf(tt.args))
			core.Encode(payload, tt.args)

			var buf bytes.Buffer
			if err := d.Render(payload, &buf); err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if buf.String() != tt.ref {
				t.Errorf("Render() = %q, want %q", buf.String(), tt.ref)
			}
		})
	}
}

func TestDescriptor_RenderWidthMismatch(t *testing.T) {
	d, err := NewDescriptor("v=%", core.KindInt64)
	if err != nil {
		t.Fatalf("NewDescriptor() error: %v", err)
	}

	var buf bytes.Buffer
	if err := d.Render(make([]byte, 4), &buf); err == nil {
		t.Error("expected error for short payload")
	}
	if err := d.Render(make([]byte, 16), &buf); err == nil {
		t.Error("expected error for oversized payload")
	}
}

func TestDescriptor_Accessors(t *testing.T) {
	d, err := NewDescriptor("a=% b=%", core.KindInt16, core.KindBool)
	if err != nil {
		t.Fatalf("NewDescriptor() error: %v", err)
	}
	if d.Format() != "a=% b=%" {
		t.Errorf("Format() = %q", d.Format())
	}
	if d.NumArgs() != 2 {
		t.Errorf("NumArgs() = %d, want 2", d.NumArgs())
	}
	if d.Width() != 3 {
		t.Errorf("Width() = %d, want 3", d.Width())
	}
	kinds := d.Kinds()
	kinds[0] = core.KindFloat64 // must not mutate the descriptor
	if d.Kinds()[0] != core.KindInt16 {
		t.Error("Kinds() must return a copy")
	}
}
