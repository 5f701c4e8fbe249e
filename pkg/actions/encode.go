package actions

import (
	"bytes"
	"encoding/json"
)

// Object is the generic ordered key-value representation of an encoded
// action. A plain map would lose key order under json.Marshal, so Object
// keeps the fields as an ordered slice and marshals them itself.
type Object struct {
	fields []Field
}

// Encode converts an action into its wire object: the first key is "action"
// mapped to the derived name, followed by every declared field in the order
// produced by the action's field enumeration. Encode works identically for
// every variant; it has no per-variant knowledge.
func Encode(a Action) *Object {
	return &Object{fields: a.Fields()}
}

// EncodeJSON is Encode followed by JSON serialization.
func EncodeJSON(a Action) ([]byte, error) {
	return json.Marshal(Encode(a))
}

// Keys returns the object's keys in encoding order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (interface{}, bool) {
	for _, f := range o.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the object as a flat JSON object, preserving key order.
// VectorXYZ and QuaternionWXYZ values serialize as plain numeric arrays.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
