package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pdvstar/models"
	"pdvstar/wire"
)

func (g *Gateway) CreatePass(ctx context.Context, p models.AccessPass) (models.AccessPass, error) {
	q, args := insertSQL("user_passes", wire.PassToRow(p), wire.PassColumns)
	var r wire.PassRow
	if err := g.conn.QueryRowContext(ctx, q, args...).Scan(r.Fields()...); err != nil {
		return models.AccessPass{}, fail("createPass", err)
	}
	return wire.PassFromRow(r), nil
}

// FindActivePass returns the owner's authoritative pass: active status,
// unexpired, latest expiry wins. A missing pass is (nil, nil).
func (g *Gateway) FindActivePass(ctx context.Context, userID string, now time.Time) (*models.AccessPass, error) {
	q := fmt.Sprintf(`SELECT %s FROM user_passes
		WHERE user_id = $1 AND status = $2 AND expires_at > $3
		ORDER BY expires_at DESC LIMIT 1`, wire.PassColumns)
	var r wire.PassRow
	err := g.conn.QueryRowContext(ctx, q, userID, models.PassActive, now).Scan(r.Fields()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fail("findActivePass", err)
	}
	p := wire.PassFromRow(r)
	return &p, nil
}

func (g *Gateway) FetchPassHistory(ctx context.Context, userID string) ([]models.AccessPass, error) {
	q := fmt.Sprintf("SELECT %s FROM user_passes WHERE user_id = $1 ORDER BY purchased_at DESC", wire.PassColumns)
	return g.queryPasses(ctx, "fetchPassHistory", q, userID)
}

// FetchAllPasses backs the admin tarification stats.
func (g *Gateway) FetchAllPasses(ctx context.Context) ([]models.AccessPass, error) {
	q := fmt.Sprintf("SELECT %s FROM user_passes ORDER BY purchased_at DESC", wire.PassColumns)
	return g.queryPasses(ctx, "fetchAllPasses", q)
}

func (g *Gateway) queryPasses(ctx context.Context, op, q string, args ...any) ([]models.AccessPass, error) {
	rows, err := g.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fail(op, err)
	}
	defer rows.Close()

	var out []models.AccessPass
	for rows.Next() {
		var r wire.PassRow
		if err := rows.Scan(r.Fields()...); err != nil {
			return nil, fail(op, err)
		}
		out = append(out, wire.PassFromRow(r))
	}
	if err := rows.Err(); err != nil {
		return nil, fail(op, err)
	}
	return out, nil
}
