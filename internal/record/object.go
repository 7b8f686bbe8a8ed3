package record

import (
	"math"
	"slices"
	"strconv"
)

// Field is one key/value pair of an Object.
type Field struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered string-keyed map of Values.
type Object struct {
	fields []Field
	index  map[string]int
}

// Record is one fetched entity. Its fields keep the source document order.
type Record = Object

// NewObject builds an object from fields. A repeated key keeps its first
// position and takes the last value, as JSON.parse does.
func NewObject(fields ...Field) *Object {
	o := &Object{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		o.Set(f.Key, f.Value)
	}
	return o
}

// Set adds key or replaces its value in place.
func (o *Object) Set(key string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.fields[i].Value = v
		return
	}
	o.index[key] = len(o.fields)
	o.fields = append(o.fields, Field{Key: key, Value: v})
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.fields[i].Value, true
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// Keys returns the field names in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the fields in order.
func (o *Object) Fields() []Field {
	if o == nil {
		return nil
	}
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

// Equal reports whether both objects hold equal fields in the same order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for i := range o.Len() {
		a, b := o.fields[i], other.fields[i]
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}

// orderIndexKeysFirst moves array-index keys ("0", "17", ...) ahead of the
// others in ascending numeric order, the way JSON objects enumerate their
// keys in a browser. Other keys keep their insertion order.
func (o *Object) orderIndexKeysFirst() {
	indexed := 0
	for _, f := range o.fields {
		if _, ok := arrayIndex(f.Key); ok {
			indexed++
		}
	}
	if indexed == 0 {
		return
	}

	slices.SortStableFunc(o.fields, func(a, b Field) int {
		ai, aok := arrayIndex(a.Key)
		bi, bok := arrayIndex(b.Key)
		switch {
		case aok && bok:
			return cmpUint(ai, bi)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
	for i, f := range o.fields {
		o.index[f.Key] = i
	}
}

// arrayIndex parses a canonical array index below 2^32-1.
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil || n >= math.MaxUint32 {
		return 0, false
	}
	return n, true
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
