package format

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"

	"github.com/latelog/latelog/core"
)

// ErrArityMismatch is returned when the number of % placeholders in a
// format string does not equal the number of bound argument kinds.
var ErrArityMismatch = errors.New("format: placeholder count does not match argument count")

// Descriptor binds a literal format string to a fixed argument kind
// sequence and knows how to render an encoded payload back to text.
// One descriptor exists per distinct call site; it is immutable after
// creation and outlives every record that references it.
type Descriptor struct {
	format   string
	segments []string // literal text around placeholders; len(kinds)+1 entries
	kinds    []core.Kind
	width    int // total payload bytes for one record
}

// NewDescriptor builds a descriptor for the given format string and kind
// sequence. It fails with ErrArityMismatch when placeholders and kinds
// disagree and with core.ErrUnsupportedKind when a kind has no
// fixed-width binding; both failures happen before the descriptor is
// usable, so no record is ever written for an invalid call site.
func NewDescriptor(format string, kinds ...core.Kind) (*Descriptor, error) {
	for _, k := range kinds {
		if !k.Valid() {
			return nil, errors.Wrapf(core.ErrUnsupportedKind, "format %q", format)
		}
	}

	segments := strings.Split(format, "%")
	if len(segments)-1 != len(kinds) {
		return nil, errors.Wrapf(ErrArityMismatch, "format %q has %d placeholders, %d arguments",
			format, len(segments)-1, len(kinds))
	}

	d := &Descriptor{
		format:   format,
		segments: segments,
		kinds:    append([]core.Kind(nil), kinds...),
	}
	for _, k := range kinds {
		d.width += k.Width()
	}
	return d, nil
}

// Format returns the literal format string.
func (d *Descriptor) Format() string {
	return d.format
}

// NumArgs returns the number of bound arguments.
func (d *Descriptor) NumArgs() int {
	return len(d.kinds)
}

// Width returns the exact payload size in bytes of one record.
func (d *Descriptor) Width() int {
	return d.width
}

// Kinds returns a copy of the bound kind sequence.
func (d *Descriptor) Kinds() []core.Kind {
	return append([]core.Kind(nil), d.kinds...)
}

// MatchArgs reports whether the argument tuple has exactly the kind
// sequence this descriptor was created with.
func (d *Descriptor) MatchArgs(args []core.Arg) bool {
	if len(args) != len(d.kinds) {
		return false
	}
	for i := range args {
		if args[i].Kind != d.kinds[i] {
			return false
		}
	}
	return true
}

// Render decodes payload strictly left to right into buf: the literal
// text before each placeholder, then the next argument at its fixed byte
// width. A payload whose length differs from Width is a corrupt record
// and is rejected without partial output being trusted.
func (d *Descriptor) Render(payload []byte, buf *bytes.Buffer) error {
	if len(payload) != d.width {
		return errors.Errorf("format: payload is %d bytes, descriptor %q needs %d",
			len(payload), d.format, d.width)
	}

	for i, k := range d.kinds {
		buf.WriteString(d.segments[i])
		n, err := core.DecodeAppend(buf, k, payload)
		if err != nil {
			return errors.Wrapf(err, "format %q argument %d", d.format, i)
		}
		payload = payload[n:]
	}
	buf.WriteString(d.segments[len(d.kinds)])
	return nil
}
