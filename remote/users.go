package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pdvstar/models"
	"pdvstar/wire"
)

func (g *Gateway) FetchUsers(ctx context.Context) ([]models.User, error) {
	q := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at DESC", wire.UserColumns)
	rows, err := g.conn.QueryContext(ctx, q)
	if err != nil {
		return nil, fail("fetchUsers", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var r wire.UserRow
		if err := rows.Scan(r.Fields()...); err != nil {
			return nil, fail("fetchUsers", err)
		}
		out = append(out, wire.UserFromRow(r))
	}
	if err := rows.Err(); err != nil {
		return nil, fail("fetchUsers", err)
	}
	return out, nil
}

// FindUserByPhone looks a user up by its natural key. A missing user is
// (nil, nil), not an error.
func (g *Gateway) FindUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	q := fmt.Sprintf("SELECT %s FROM users WHERE phone = $1", wire.UserColumns)
	var r wire.UserRow
	err := g.conn.QueryRowContext(ctx, q, phone).Scan(r.Fields()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fail("findUserByPhone", err)
	}
	u := wire.UserFromRow(r)
	return &u, nil
}

func (g *Gateway) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	q, args := insertSQL("users", wire.UserToRow(u), wire.UserColumns)
	var r wire.UserRow
	if err := g.conn.QueryRowContext(ctx, q, args...).Scan(r.Fields()...); err != nil {
		return models.User{}, fail("createUser", err)
	}
	return wire.UserFromRow(r), nil
}

func (g *Gateway) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	row := wire.UserPatchToRow(patch)
	if len(row) == 0 {
		return models.User{}, fail("updateUser", errEmptyPatch)
	}
	q, args := updateSQL("users", row, id, wire.UserColumns)
	var r wire.UserRow
	if err := g.conn.QueryRowContext(ctx, q, args...).Scan(r.Fields()...); err != nil {
		return models.User{}, fail("updateUser", err)
	}
	return wire.UserFromRow(r), nil
}
