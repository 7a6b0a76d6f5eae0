package decoder

import "fmt"

// FixtureMessage is an in-memory Message used by the analyzer's own tests
// to stand in for a real bit-level decoder. It is not part of the decoder
// contract proper — a production decoder is supplied externally (§6.2) —
// but gives the test suite a concrete, easily constructed Message.
type FixtureMessage struct {
	identity string
	fields   map[string]Field
	ncell    int
}

// NewFixtureMessage returns an empty fixture for the given message-type
// identity, e.g. "1077".
func NewFixtureMessage(identity string) *FixtureMessage {
	return &FixtureMessage{identity: identity, fields: map[string]Field{}}
}

// WithField sets a named field and returns the receiver for chaining.
func (m *FixtureMessage) WithField(code string, f Field) *FixtureMessage {
	m.fields[code] = f
	return m
}

// WithIndexedField sets the i-th (1-based) repeat-indexed field for base
// and returns the receiver for chaining.
func (m *FixtureMessage) WithIndexedField(base string, i int, f Field) *FixtureMessage {
	m.fields[indexedKey(base, i)] = f
	return m
}

// WithNCell sets the MSM cell count and returns the receiver for chaining.
func (m *FixtureMessage) WithNCell(n int) *FixtureMessage {
	m.ncell = n
	return m
}

func indexedKey(base string, i int) string {
	return fmt.Sprintf("%s_%02d", base, i)
}

// Identity implements Message.
func (m *FixtureMessage) Identity() string { return m.identity }

// Field implements Message.
func (m *FixtureMessage) Field(code string) Field { return m.fields[code] }

// IndexedField implements Message.
func (m *FixtureMessage) IndexedField(base string, i int) Field {
	return m.fields[indexedKey(base, i)]
}

// NCell implements Message.
func (m *FixtureMessage) NCell() int { return m.ncell }

// FixtureIterator replays a fixed slice of messages, including nil entries
// standing in for decoder-skipped frames (§6.2).
type FixtureIterator struct {
	messages []Message
	pos      int
}

// NewFixtureIterator returns an Iterator over messages in order.
func NewFixtureIterator(messages ...Message) *FixtureIterator {
	return &FixtureIterator{messages: messages, pos: -1}
}

// Next implements Iterator.
func (it *FixtureIterator) Next() bool {
	it.pos++
	return it.pos < len(it.messages)
}

// Message implements Iterator.
func (it *FixtureIterator) Message() Message {
	if it.pos < 0 || it.pos >= len(it.messages) {
		return nil
	}
	return it.messages[it.pos]
}

// Err implements Iterator.
func (it *FixtureIterator) Err() error { return nil }
