package alignment

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// FieldSource is implemented by source records that resolve their own
// fields, for example records decoded from a snapshot. An error from Field
// means the field is absent.
type FieldSource interface {
	Field(name string) (any, error)
}

// Lookup returns the raw value of the field called name on src. Names are
// matched case-insensitively.
//
// Lookup consults, in order, the [FieldSource] implementation of src, the
// keys of a map with string keys, exported struct fields, and exported
// methods that take no arguments and return a value, optionally followed by
// an error. A panic raised while reading the field is recovered and reported
// as an absent field.
func Lookup(src any, name string) (v any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			v, ok = nil, false
		}
	}()

	if src == nil {
		return nil, false
	}
	if fs, isFS := src.(FieldSource); isFS {
		v, err := fs.Field(name)
		if err != nil {
			return nil, false
		}
		return v, true
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		iter := rv.MapRange()
		for iter.Next() {
			if strings.EqualFold(iter.Key().String(), name) {
				return iter.Value().Interface(), true
			}
		}
		return nil, false
	}

	if v, ok := lookupStructField(rv, name); ok {
		return v, true
	}
	return lookupMethod(rv, name)
}

func lookupStructField(rv reflect.Value, name string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	f := rv.FieldByNameFunc(func(n string) bool {
		return strings.EqualFold(n, name)
	})
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}
	return f.Interface(), true
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func lookupMethod(rv reflect.Value, name string) (any, bool) {
	typ := rv.Type()
	for i, n := 0, typ.NumMethod(); i < n; i++ {
		if !strings.EqualFold(typ.Method(i).Name, name) {
			continue
		}
		m := rv.Method(i)
		mt := m.Type()
		if mt.NumIn() != 0 {
			return nil, false
		}
		switch mt.NumOut() {
		case 1:
			return m.Call(nil)[0].Interface(), true
		case 2:
			if !mt.Out(1).Implements(errorType) {
				return nil, false
			}
			out := m.Call(nil)
			if !out[1].IsNil() {
				return nil, false
			}
			return out[0].Interface(), true
		default:
			return nil, false
		}
	}
	return nil, false
}

// Extract returns the field called name on src, converted to T. If the
// field is absent, nil, cannot be converted, or panics while being read,
// Extract returns def. It never fails.
//
// Because of that, callers have to treat every result as possibly being
// def. The conventional defaults are NaN for numbers, false for flags, and
// the empty string or [NoType] for text.
func Extract[T any](src any, name string, def T) T {
	v, ok := Lookup(src, name)
	if !ok || v == nil {
		return def
	}
	out, err := coerce(v, def)
	if err != nil {
		return def
	}
	return out
}

func coerce[T any](v any, def T) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var (
		out any
		err error
	)
	switch any(def).(type) {
	case float64:
		out, err = cast.ToFloat64E(v)
	case string:
		out, err = cast.ToStringE(v)
	case bool:
		out, err = cast.ToBoolE(v)
	case int:
		out, err = cast.ToIntE(v)
	default:
		return def, fmt.Errorf("cannot convert %T to %T", v, def)
	}
	if err != nil {
		return def, err
	}
	return out.(T), nil
}
