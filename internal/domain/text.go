package domain

import (
	"fmt"
	"reflect"
	"strconv"
)

// Text returns the textual form of v as it appears in an argument vector.
//
// Accepted values are strings, byte slices, fmt.Stringer and error
// implementations, booleans, and all integer and floating point kinds,
// including named types built on them. Anything else yields ErrNotTextual.
func Text(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: <nil>", ErrNotTextual)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", fmt.Errorf("%w: nil %T", ErrNotTextual, v)
	}

	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	case error:
		return x.Error(), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
	}
	return "", fmt.Errorf("%w: %T", ErrNotTextual, v)
}

// Argv converts command and args to an argument vector, command first.
// Order is preserved. The first value that has no textual form aborts the
// conversion.
func Argv(command any, args ...any) ([]string, error) {
	argv := make([]string, 0, len(args)+1)
	name, err := Text(command)
	if err != nil {
		return nil, fmt.Errorf("command: %w", err)
	}
	argv = append(argv, name)
	for i, a := range args {
		s, err := Text(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		argv = append(argv, s)
	}
	return argv, nil
}
