package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito tanto pela conexão quanto por *sql.Tx
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ Queryer = (*sql.Tx)(nil)
	_ Conn    = (*Connection)(nil)
)
