package brand

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
// The v verb, with any flags, renders Name(raw), the raw value formatted with
// the same directive: UserID(10), UserID("alice") for %#v. Every other verb is
// applied to the raw value alone, so %d of UserID(10) prints 10.
func (b Brand[T, R]) Format(f fmt.State, verb rune) {
	directive := fmt.FormatString(f, verb)
	if verb != 'v' {
		fmt.Fprintf(f, directive, b.raw)
		return
	}
	io.WriteString(f, Name[T]())
	io.WriteString(f, "(")
	fmt.Fprintf(f, directive, b.raw)
	io.WriteString(f, ")")
}

// String returns the %v rendering of b.
func (b Brand[T, R]) String() string {
	return Name[T]() + "(" + fmt.Sprint(b.raw) + ")"
}
