package awsx

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/louhi-io/louhi/types"
)

// structToRaw flattens an SDK output struct into the engine's schema-less
// response form. One reflection walk handles every service's output shape:
// pointers are dereferenced, nil fields dropped, slices become sequences,
// nested structs become mappings.
func structToRaw(out any) types.RawResponse {
	raw := types.RawResponse{}
	if out == nil {
		return raw
	}

	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return raw
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return raw
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Name == "ResultMetadata" {
			continue
		}
		value, ok := toValue(v.Field(i))
		if !ok {
			continue
		}
		raw[field.Name] = value
	}
	return raw
}

// toValue converts one reflected value into the variant form. The second
// return is false for nil pointers and unconvertible kinds, which are
// dropped the way absent response fields are.
func toValue(v reflect.Value) (types.Value, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return types.Value{}, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if ts, ok := v.Interface().(time.Time); ok {
			return types.Scalar(ts.UTC().Format(time.RFC3339)), true
		}
		fields := map[string]types.Value{}
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			value, ok := toValue(v.Field(i))
			if !ok {
				continue
			}
			fields[field.Name] = value
		}
		return types.Mapping(fields), true

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return types.Scalar(fmt.Sprintf("%x", v.Bytes())), true
		}
		items := make([]types.Value, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			item, ok := toValue(v.Index(i))
			if !ok {
				continue
			}
			items = append(items, item)
		}
		return types.Sequence(items...), true

	case reflect.Map:
		fields := make(map[string]types.Value, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			value, ok := toValue(iter.Value())
			if !ok {
				continue
			}
			fields[fmt.Sprint(iter.Key().Interface())] = value
		}
		return types.Mapping(fields), true

	case reflect.String:
		return types.Scalar(v.String()), true
	case reflect.Bool:
		return types.Scalar(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return types.Scalar(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return types.Scalar(fmt.Sprint(u)), true
		}
		return types.Scalar(int64(u)), true
	case reflect.Float32, reflect.Float64:
		return types.Scalar(v.Float()), true
	default:
		return types.Value{}, false
	}
}
