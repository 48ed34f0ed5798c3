package brandpgx

import (
	"context"
	"errors"
	"fmt"

	"github.com/authcorp/libs/go/brand"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoPgType is returned by RegisterType when pgx has no PostgreSQL type for
// the raw type.
var ErrNoPgType = errors.New("brandpgx: no PostgreSQL type for raw type")

// Register prepends TryWrapEncodePlan to m's wrapper list. Call it once per
// map.
func Register(m *pgtype.Map) {
	m.TryWrapEncodePlanFuncs = append([]pgtype.TryWrapEncodePlanFunc{TryWrapEncodePlan}, m.TryWrapEncodePlanFuncs...)
}

// TryWrapEncodePlan is a pgtype.TryWrapEncodePlanFunc that replaces a brand
// with its raw value.
func TryWrapEncodePlan(value any) (plan pgtype.WrappedEncodePlanNextSetter, nextValue any, ok bool) {
	if u, ok := value.(brand.Unwrapper); ok {
		return &unwrapEncodePlan{}, u.UnwrapRaw(), true
	}
	return nil, nil, false
}

type unwrapEncodePlan struct {
	next pgtype.EncodePlan
}

func (plan *unwrapEncodePlan) SetNext(next pgtype.EncodePlan) { plan.next = next }

func (plan *unwrapEncodePlan) Encode(value any, buf []byte) (newBuf []byte, err error) {
	return plan.next.Encode(value.(brand.Unwrapper).UnwrapRaw(), buf)
}

// TypeFor returns the PostgreSQL type pgx associates with R in m.
func TypeFor[T brand.Tag, R any](m *pgtype.Map) (*pgtype.Type, bool) {
	var raw R
	return m.TypeForValue(raw)
}

// RegisterType maps brand.Brand[T, R] and its pointer to the PostgreSQL type
// of R, so pgx can pick a codec for the brand when the OID is unknown.
func RegisterType[T brand.Tag, R any](m *pgtype.Map) error {
	dt, ok := TypeFor[T, R](m)
	if !ok {
		var raw R
		return fmt.Errorf("%w: %s over %T", ErrNoPgType, brand.Name[T](), raw)
	}
	m.RegisterDefaultPgType(brand.Brand[T, R]{}, dt.Name)
	m.RegisterDefaultPgType(&brand.Brand[T, R]{}, dt.Name)
	return nil
}

// Configure chains an AfterConnect hook onto cfg that registers the brand
// encoder on every new connection's type map.
func Configure(cfg *pgxpool.Config) {
	next := cfg.AfterConnect
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		Register(conn.TypeMap())
		if next != nil {
			return next(ctx, conn)
		}
		return nil
	}
}
