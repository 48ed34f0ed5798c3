//go:build !brand_nosql

package brand

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
)

// Value implements driver.Valuer. The raw value is converted the way
// database/sql converts an argument of the raw type, including calling the raw
// type's own Value method.
func (b Brand[T, R]) Value() (driver.Value, error) {
	return driver.DefaultParameterConverter.ConvertValue(b.raw)
}

// Scan implements sql.Scanner. It defers to the raw type's Scan method when
// there is one and to the database/sql conversion rules otherwise.
func (b *Brand[T, R]) Scan(src any) error {
	if s, ok := any(&b.raw).(sql.Scanner); ok {
		return s.Scan(src)
	}

	var n sql.Null[R]
	if err := n.Scan(src); err != nil {
		return err
	}
	if !n.Valid {
		switch k := reflect.TypeFor[R]().Kind(); k {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		default:
			return fmt.Errorf("converting NULL to %s is unsupported", k)
		}
	}
	b.raw = n.V
	return nil
}
