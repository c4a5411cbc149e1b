package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	ConnKey contextKey = "db_conn"
	TxKey   contextKey = "db_tx"
)

// Querier is the query surface shared by pools, connections, and
// transactions.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// ConnMiddleware acquires a dedicated connection for the request and
// binds it to the request context, so every store call within one
// request shares a connection (and any transaction opened on it).
func ConnMiddleware(pool *pgxpool.Pool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			conn, err := pool.Acquire(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
			defer conn.Release()

			c.SetRequest(c.Request().WithContext(context.WithValue(ctx, ConnKey, conn)))
			return next(c)
		}
	}
}

// ConnFromContext returns the database handle bound to the request: the
// open transaction if one was started, else the request connection, else
// nil (callers fall back to their pool).
func ConnFromContext(ctx context.Context) Querier {
	if tx, ok := ctx.Value(TxKey).(pgx.Tx); ok && tx != nil {
		return tx
	}
	if conn, ok := ctx.Value(ConnKey).(*pgxpool.Conn); ok && conn != nil {
		return conn
	}
	return nil
}

// TxFromContext returns the transaction bound to the context, or nil.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(TxKey).(pgx.Tx)
	return tx
}

// WithTx runs fn inside a transaction on the request connection. Store
// calls made through the context see the transaction, so a
// check-then-write sequence wrapped here is serialized against competing
// writers. Requires ConnMiddleware upstream.
func WithTx(ctx context.Context, fn func(context.Context) error) error {
	conn, ok := ctx.Value(ConnKey).(*pgxpool.Conn)
	if !ok || conn == nil {
		return fmt.Errorf("no database connection bound to context")
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, TxKey, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
