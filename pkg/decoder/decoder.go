// Package decoder defines the boundary between the RTCM3 bit-level frame
// decoder (supplied externally, out of scope for this analyzer) and the
// health-analytics core. It models a decoded message as a closed set of
// named, typed field accessors rather than relying on reflection over a
// stringly-typed struct.
package decoder

import "strconv"

// Kind identifies the concrete type carried by a Field.
type Kind int

// The field kinds a decoded RTCM3 data field may carry.
const (
	Absent Kind = iota
	Int
	Float
	String
)

// Field is a small tagged value returned by a Message's field accessors.
// A zero Field is Absent, matching the decoder contract's sentinel for a
// missing field (§6.2): FieldAbsent is not an error, callers simply skip
// the observation or message that depended on it.
type Field struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntField builds a present integer-valued field.
func IntField(v int64) Field { return Field{kind: Int, i: v} }

// FloatField builds a present float-valued field.
func FloatField(v float64) Field { return Field{kind: Float, f: v} }

// StringField builds a present string-valued field.
func StringField(v string) Field { return Field{kind: String, s: v} }

// Present reports whether the field carries a value.
func (f Field) Present() bool { return f.kind != Absent }

// Kind returns the field's concrete kind.
func (f Field) Kind() Kind { return f.kind }

// Int returns the field as an integer. Non-integer kinds are converted
// when unambiguous (a numeric string, or a float truncated toward zero);
// ok is false for an absent field or an unparseable string.
func (f Field) Int() (v int64, ok bool) {
	switch f.kind {
	case Int:
		return f.i, true
	case Float:
		return int64(f.f), true
	case String:
		n, err := strconv.ParseInt(f.s, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Float returns the field as a float64. See Int for conversion rules.
func (f Field) Float() (v float64, ok bool) {
	switch f.kind {
	case Float:
		return f.f, true
	case Int:
		return float64(f.i), true
	case String:
		n, err := strconv.ParseFloat(f.s, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// String returns the field's string form. Numeric fields are formatted
// verbatim; this is used for PRN fields that may be numeric or alphanumeric.
func (f Field) String() string {
	switch f.kind {
	case String:
		return f.s
	case Int:
		return strconv.FormatInt(f.i, 10)
	case Float:
		return strconv.FormatFloat(f.f, 'g', -1, 64)
	default:
		return ""
	}
}

// IsNumeric reports whether the field holds an Int or a Float, as opposed
// to an alphanumeric String field. MSM cell PRNs are prefixed with the
// constellation letter only when numeric (§4.4); some decoders surface
// them already as a constellation-prefixed string.
func (f Field) IsNumeric() bool { return f.kind == Int || f.kind == Float }

// Message is one decoded RTCM3 message as seen by the analyzer: a
// message-type identity plus named and repeat-indexed field accessors.
// The repeat-indexed accessors follow the decoder contract's naming
// convention, "FIELD_i" with i zero-padded to two digits starting at 1
// (§6.2); implementations receive the base name and the 1-based index
// and perform that formatting themselves.
type Message interface {
	// Identity is the decimal message-type code, e.g. "1077".
	Identity() string

	// Field returns the named field, e.g. Field("DF004").
	Field(code string) Field

	// IndexedField returns the i-th (1-based) repeat-indexed field for
	// the given base name, e.g. IndexedField("CELLPRN", 1) for
	// "CELLPRN_01".
	IndexedField(base string, i int) Field

	// NCell returns the MSM cell count for MSM messages; 0 otherwise.
	NCell() int
}

// Iterator yields decoded messages from a byte stream. A nil Message with
// a nil error indicates a frame the decoder recognized as non-RTCM or
// malformed and chose to skip (log-and-continue, §6.2); callers should
// treat it as "no message this round" and keep iterating.
type Iterator interface {
	// Next advances to the next frame. It returns false at end of
	// stream or on unrecoverable I/O error (retrievable via Err).
	Next() bool

	// Message returns the message decoded by the most recent Next, or
	// nil if that frame carried no usable message.
	Message() Message

	// Err returns the first non-EOF error encountered, if any.
	Err() error
}
