package types

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the shapes a schema-less response value can take
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// Value is one node of a schema-less API response. Response shapes are
// genuinely unknown per operation, so everything downstream of an invocation
// is expressed as this variant over scalar, sequence, and mapping.
type Value struct {
	kind   Kind
	scalar any
	seq    []Value
	fields map[string]Value
}

// Scalar wraps a primitive (string, bool, number, or nil)
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Sequence wraps an ordered collection of values
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// Mapping wraps a field name to value mapping
func Mapping(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindMapping, fields: fields}
}

// Kind reports which variant this value holds
func (v Value) Kind() Kind { return v.kind }

// IsSequence reports whether the value is a sequence
func (v Value) IsSequence() bool { return v.kind == KindSequence }

// Items returns the sequence elements, nil for non-sequences
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.seq
}

// Fields returns the mapping fields, nil for non-mappings
func (v Value) Fields() map[string]Value {
	if v.kind != KindMapping {
		return nil
	}
	return v.fields
}

// ScalarValue returns the wrapped primitive, nil for non-scalars
func (v Value) ScalarValue() any {
	if v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

// Len returns the element count for sequences and mappings, 0 for scalars
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.fields)
	default:
		return 0
	}
}

// MarshalJSON renders the variant as plain JSON. Mapping keys come out
// sorted, which keeps snapshot content deterministic across runs.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindSequence:
		return json.Marshal(v.seq)
	case KindMapping:
		return json.Marshal(v.fields)
	default:
		return json.Marshal(v.scalar)
	}
}

// UnmarshalJSON rebuilds the variant from plain JSON
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

// FromAny converts a decoded JSON value (map[string]any, []any, or primitive)
// into the variant form
func FromAny(raw any) Value {
	switch t := raw.(type) {
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, val := range t {
			fields[k] = FromAny(val)
		}
		return Mapping(fields)
	case []any:
		items := make([]Value, 0, len(t))
		for _, val := range t {
			items = append(items, FromAny(val))
		}
		return Sequence(items...)
	default:
		return Scalar(t)
	}
}

// Equal compares two values structurally
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for k, val := range v.fields {
			o, ok := other.fields[k]
			if !ok || !val.Equal(o) {
				return false
			}
		}
		return true
	default:
		return fmt.Sprint(v.scalar) == fmt.Sprint(other.scalar)
	}
}
