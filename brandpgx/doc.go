// Package brandpgx lets brands travel through pgx v5 as their raw values.
//
// A brand is encoded with the plan pgx would pick for its raw value, so the
// bytes on the wire are identical. Decoding uses the brand's sql.Scanner,
// which pgx consults before its own wrapper plans.
//
// Install the encoder on a pool with Configure:
//
//	cfg, err := pgxpool.ParseConfig(dsn)
//	if err != nil {
//		return err
//	}
//	brandpgx.Configure(cfg)
//	pool, err := pgxpool.NewWithConfig(ctx, cfg)
package brandpgx
