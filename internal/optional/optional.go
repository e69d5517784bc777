// Package optional models request fields whose presence matters: a field can be
// omitted, explicitly null, or provided with a value.
package optional

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Value is the zero value when omitted. It decodes JSON null as IsNull.
type Value[T any] struct {
	set  bool
	null bool
	v    T
}

func Of[T any](v T) Value[T] {
	return Value[T]{set: true, v: v}
}

func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

func (o Value[T]) IsSet() bool { return o.set }

func (o Value[T]) IsNull() bool { return o.set && o.null }

// IsZero lets `json:",omitzero"` drop omitted fields.
func (o Value[T]) IsZero() bool { return !o.set }

// Get returns the provided value; ok is false when omitted or null.
func (o Value[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.v, true
}

// Or returns the provided value or fallback.
func (o Value[T]) Or(fallback T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return fallback
}

func (o *Value[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.null = true
		var zero T
		o.v = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.v)
}

func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return jsonNull, nil
	}
	return json.Marshal(o.v)
}
