package collection

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

// Flatten concatenates the inner slices into a single one.
func Flatten[T any](xss [][]T) []T {
	var n int
	for _, xs := range xss {
		n += len(xs)
	}
	out := make([]T, 0, n)
	for _, xs := range xss {
		out = append(out, xs...)
	}
	return out
}

// DeepFlatten walks an arbitrarily nested value and collects its leaves
// in order. Slices and arrays are descended; maps are descended by value
// in a deterministic key order; strings and byte slices count as leaves,
// as does anything that is not a container.
func DeepFlatten(v interface{}) []interface{} {
	var out []interface{}
	deepFlattenInto(&out, reflect.ValueOf(v))
	return out
}

func deepFlattenInto(out *[]interface{}, rv reflect.Value) {
	if !rv.IsValid() {
		*out = append(*out, nil)
		return
	}
	switch rv.Kind() {
	case reflect.Interface, reflect.Ptr:
		if rv.IsNil() {
			*out = append(*out, nil)
			return
		}
		deepFlattenInto(out, rv.Elem())
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			*out = append(*out, rv.Interface())
			return
		}
		for i := 0; i < rv.Len(); i++ {
			deepFlattenInto(out, rv.Index(i))
		}
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			deepFlattenInto(out, rv.MapIndex(k))
		}
	default:
		*out = append(*out, rv.Interface())
	}
}

// DeepExtract follows a path of keys and indices into a nested value and
// deep-flattens whatever sits at the end of the path. Map levels take a
// key of the map's key type; slice and array levels take an int index.
func DeepExtract(v interface{}, path ...interface{}) ([]interface{}, error) {
	rv := reflect.ValueOf(v)
	for depth, key := range path {
		for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Ptr {
			rv = rv.Elem()
		}
		switch rv.Kind() {
		case reflect.Map:
			kv := reflect.ValueOf(key)
			if !kv.IsValid() || !kv.Type().AssignableTo(rv.Type().Key()) {
				return nil, errors.Errorf("key %v does not fit map key type %s at path depth %d", key, rv.Type().Key(), depth)
			}
			entry := rv.MapIndex(kv)
			if !entry.IsValid() {
				return nil, errors.Errorf("key %v not found at path depth %d", key, depth)
			}
			rv = entry
		case reflect.Slice, reflect.Array:
			i, ok := key.(int)
			if !ok {
				return nil, errors.Errorf("index at path depth %d must be an int, got %T", depth, key)
			}
			if i < 0 || i >= rv.Len() {
				return nil, errors.Errorf("index %d out of range at path depth %d", i, depth)
			}
			rv = rv.Index(i)
		default:
			return nil, errors.Errorf("cannot descend into %s at path depth %d", rv.Kind(), depth)
		}
	}
	var out []interface{}
	deepFlattenInto(&out, rv)
	return out, nil
}
