package brand

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrNoTextForm is returned by MarshalText and UnmarshalText when the raw type
// has no text encoding.
var ErrNoTextForm = errors.New("brand: raw type has no text form")

// MarshalJSON encodes b exactly as its raw value. Strings are always
// HTML-escaped: encoding/json does not pass Encoder.SetEscapeHTML(false) on to
// a json.Marshaler.
func (b Brand[T, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(&b.raw)
}

// UnmarshalJSON decodes a raw value and brands it unchecked. An integer raw
// without its own UnmarshalJSON also accepts the quoted MarshalText form,
// which is how encoding/json hands over map keys. Otherwise, and whenever that
// text does not parse, the raw decode error is returned.
func (b *Brand[T, R]) UnmarshalJSON(data []byte) error {
	err := json.Unmarshal(data, &b.raw)
	if err == nil || !b.quotedIntegerKey() {
		return err
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Value != "string" {
		return err
	}
	var s string
	if json.Unmarshal(data, &s) != nil || b.UnmarshalText([]byte(s)) != nil {
		return err
	}
	return nil
}

func (b *Brand[T, R]) quotedIntegerKey() bool {
	if _, ok := any(&b.raw).(json.Unmarshaler); ok {
		return false
	}
	switch reflect.TypeFor[R]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// MarshalText uses the raw type's encoding.TextMarshaler. String and integer
// raw values are rendered the way encoding/json renders map keys, so a map
// keyed by a brand encodes like a map keyed by its raw type.
func (b Brand[T, R]) MarshalText() ([]byte, error) {
	if m, ok := any(b.raw).(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}
	if m, ok := any(&b.raw).(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}

	v := reflect.ValueOf(&b.raw).Elem()
	switch v.Kind() {
	case reflect.String:
		return []byte(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(nil, v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(nil, v.Uint(), 10), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoTextForm, v.Type())
}

// UnmarshalText is the inverse of MarshalText.
func (b *Brand[T, R]) UnmarshalText(text []byte) error {
	if u, ok := any(&b.raw).(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText(text)
	}

	v := reflect.ValueOf(&b.raw).Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(string(text))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(string(text), 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(string(text), 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNoTextForm, v.Type())
}
