package value

import "time"

// Kind identifies the variant of a Value.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDatetime
	KindArray
	KindTable
)

// String returns a human-readable kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindDatetime:
		return "datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed TOML document.
type Value interface {
	Kind() Kind
}

// String is a TOML string.
type String string

// Integer is a TOML integer (64-bit signed).
type Integer int64

// Float is a TOML float (64-bit).
type Float float64

// Boolean is a TOML boolean.
type Boolean bool

// Datetime is a TOML datetime. It is carried only to be rendered as its
// canonical RFC 3339 text; no temporal arithmetic happens anywhere.
type Datetime time.Time

// Array is an ordered, possibly heterogeneous sequence of values.
type Array []Value

// Entry is a single key/value pair of a Table.
type Entry struct {
	Key   string
	Value Value
}

// Table is an ordered collection of unique-keyed entries. Entries are
// kept sorted by key so that a parsed document has one canonical shape.
type Table []Entry

func (String) Kind() Kind   { return KindString }
func (Integer) Kind() Kind  { return KindInteger }
func (Float) Kind() Kind    { return KindFloat }
func (Boolean) Kind() Kind  { return KindBoolean }
func (Datetime) Kind() Kind { return KindDatetime }
func (Array) Kind() Kind    { return KindArray }
func (Table) Kind() Kind    { return KindTable }

// Get returns the value stored under key, if present.
func (t Table) Get(key string) (Value, bool) {
	for _, e := range t {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}

// Empty returns the neutral value produced by missed navigation: an
// empty table.
func Empty() Value {
	return Table{}
}

// IsEmpty reports whether v is the neutral value.
func IsEmpty(v Value) bool {
	t, ok := v.(Table)

	return ok && len(t) == 0
}
