package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Repository is the CRUD contract every entity store satisfies.
// FindByID and DeleteByID report a missing key as sql.ErrNoRows; DeleteByID
// reports a still-referenced row as ErrIntegrity.
type Repository[T any, K comparable] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, key K) (*T, error)
	Save(ctx context.Context, v *T) error
	DeleteByID(ctx context.Context, key K) error
	ExistsByID(ctx context.Context, key K) (bool, error)
}

// Querier is the handle the repos run on. *sqlx.DB and *sqlx.Tx both
// satisfy it, so a set of repos can share one transaction.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// inTx runs fn in a new transaction, or directly on q when q already is one.
func inTx(ctx context.Context, q Querier, fn func(Querier) error) error {
	db, ok := q.(*sqlx.DB)
	if !ok {
		return fn(q)
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return wrap(err, "begin", "")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return wrap(tx.Commit(), "commit", "")
}

// table implements the key-based part of Repository over one table.
// Entity repos embed it and add Save plus their relation queries.
type table[T any, K comparable] struct {
	db      Querier
	name    string
	columns string
	keyCols []string
	keyArgs func(K) []any
}

func idTable[T any](db Querier, name, columns string) table[T, int64] {
	return table[T, int64]{
		db:      db,
		name:    name,
		columns: columns,
		keyCols: []string{"id"},
		keyArgs: func(id int64) []any { return []any{id} },
	}
}

func (t *table[T, K]) where() string {
	parts := make([]string, len(t.keyCols))
	for i, c := range t.keyCols {
		parts[i] = c + " = ?"
	}
	return strings.Join(parts, " AND ")
}

func (t *table[T, K]) FindAll(ctx context.Context) ([]T, error) {
	out := []T{}
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, t.columns, t.name, strings.Join(t.keyCols, ", "))
	if err := t.db.SelectContext(ctx, &out, q); err != nil {
		return nil, wrap(err, "select", t.name)
	}
	return out, nil
}

func (t *table[T, K]) FindByID(ctx context.Context, key K) (*T, error) {
	var v T
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE %s`, t.columns, t.name, t.where())
	if err := t.db.GetContext(ctx, &v, t.db.Rebind(q), t.keyArgs(key)...); err != nil {
		return nil, wrap(err, "get", t.name)
	}
	return &v, nil
}

func (t *table[T, K]) ExistsByID(ctx context.Context, key K) (bool, error) {
	var ok bool
	q := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s)`, t.name, t.where())
	if err := t.db.GetContext(ctx, &ok, t.db.Rebind(q), t.keyArgs(key)...); err != nil {
		return false, wrap(err, "exists", t.name)
	}
	return ok, nil
}

func (t *table[T, K]) DeleteByID(ctx context.Context, key K) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s`, t.name, t.where())
	res, err := t.db.ExecContext(ctx, t.db.Rebind(q), t.keyArgs(key)...)
	if err != nil {
		return wrap(err, "delete", t.name)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wrap(sql.ErrNoRows, "delete", t.name)
	}
	return nil
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool { return errors.Is(err, sql.ErrNoRows) }
