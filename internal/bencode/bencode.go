package bencode

import (
	"bytes"
	"fmt"
)

// The four bencode datatypes. Everything is done around raw bytes - text encoding
// does not apply here, so String is a byte slice and dict keys are matched byte-wise.

type Value interface {
	encode_to(buf *bytes.Buffer)
}

type Integer int64

type String []byte

type List []Value

// Dict preserves the key order seen in the input, which is not necessarily sorted.
// Lookup is by exact key bytes. Canonical (sorted) order only matters on encode.
type Dict struct {
	keys   []String
	values []Value
}

func (d Dict) Len() int {
	return len(d.keys)
}

func (d Dict) Keys() []String {
	return d.keys
}

func (d Dict) Get(key string) (Value, bool) {
	for i, k := range d.keys {
		if string(k) == key {
			return d.values[i], true
		}
	}
	return nil, false
}

// set overwrites an existing key's value in place; a repeated key keeps its
// original position, like a map assignment would
func (d *Dict) set(key String, value Value) {
	for i, k := range d.keys {
		if bytes.Equal(k, key) {
			d.values[i] = value
			return
		}
	}
	d.keys = append(d.keys, key)
	d.values = append(d.values, value)
}

// Get fetches a key from a dict and asserts its concrete bencode type
func Get[T Value](d Dict, key string) (T, error) {
	var nil_t T
	val, exists := d.Get(key)
	if !exists {
		return nil_t, fmt.Errorf("key %s was not in dict", key)
	}
	res, ok := val.(T)
	if !ok {
		return nil_t, fmt.Errorf("key %s's value was an invalid type: %v", key, val)
	}
	return res, nil
}

// GetStrings fetches a list of byte strings, e.g. the path segments of a file entry
func GetStrings(d Dict, key string) ([]String, error) {
	list, err := Get[List](d, key)
	if err != nil {
		return nil, err
	}
	results := []String{}
	for _, v := range list {
		s, ok := v.(String)
		if !ok {
			return nil, fmt.Errorf("a non-string value was in the list: %v", v)
		}
		results = append(results, s)
	}
	return results, nil
}
