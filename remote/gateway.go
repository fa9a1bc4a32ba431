// Package remote is the typed CRUD gateway to the hosted Postgres store. All
// SQL lives here; every failure is logged and counted, then returned as a
// plain error value for the caller to absorb (fallback to the local mirror,
// keep an optimistic mutation, and so on). Nothing in this package is fatal.
package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"pdvstar/obs"
)

var errEmptyPatch = errors.New("empty patch")

type Gateway struct {
	conn *sql.DB
}

func New(conn *sql.DB) *Gateway {
	return &Gateway{conn: conn}
}

// fail logs a gateway diagnostic and bumps the failure counter.
func fail(op string, err error) error {
	log.Printf("remote: %s: %v", op, err)
	obs.RemoteFailure(op)
	return err
}

// insertSQL builds an INSERT ... RETURNING statement from a write payload.
// Columns are sorted so statements are stable.
func insertSQL(table string, row map[string]any, returning string) (string, []any) {
	cols := sortedKeys(row)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[c]
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), returning)
	return q, args
}

// updateSQL builds an UPDATE ... WHERE id=$n RETURNING statement from a
// partial payload. The id is appended as the last argument.
func updateSQL(table string, row map[string]any, id, returning string) (string, []any) {
	cols := sortedKeys(row)
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
		args = append(args, row[c])
	}
	args = append(args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(cols)+1, returning)
	return q, args
}

func sortedKeys(row map[string]any) []string {
	cols := make([]string, 0, len(row))
	for c := range row {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.conn.PingContext(ctx)
}
