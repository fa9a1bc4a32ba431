package remote

import (
	"context"
	"fmt"
	"log"

	"pdvstar/models"
	"pdvstar/obs"
	"pdvstar/wire"
)

func (g *Gateway) FetchAds(ctx context.Context) ([]models.Ad, error) {
	q := fmt.Sprintf("SELECT %s FROM ads ORDER BY position ASC", wire.AdColumns)
	return g.queryAds(ctx, "fetchAds", q)
}

// FetchActiveAds filters on the active flag server-side.
func (g *Gateway) FetchActiveAds(ctx context.Context) ([]models.Ad, error) {
	q := fmt.Sprintf("SELECT %s FROM ads WHERE is_active = TRUE ORDER BY position ASC", wire.AdColumns)
	return g.queryAds(ctx, "fetchActiveAds", q)
}

func (g *Gateway) queryAds(ctx context.Context, op, q string, args ...any) ([]models.Ad, error) {
	rows, err := g.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fail(op, err)
	}
	defer rows.Close()

	var out []models.Ad
	for rows.Next() {
		var r wire.AdRow
		if err := rows.Scan(r.Fields()...); err != nil {
			return nil, fail(op, err)
		}
		out = append(out, wire.AdFromRow(r))
	}
	if err := rows.Err(); err != nil {
		return nil, fail(op, err)
	}
	return out, nil
}

func (g *Gateway) CreateAd(ctx context.Context, a models.Ad) (models.Ad, error) {
	q, args := insertSQL("ads", wire.AdToRow(a), wire.AdColumns)
	var r wire.AdRow
	if err := g.conn.QueryRowContext(ctx, q, args...).Scan(r.Fields()...); err != nil {
		return models.Ad{}, fail("createAd", err)
	}
	return wire.AdFromRow(r), nil
}

func (g *Gateway) UpdateAd(ctx context.Context, id string, patch models.AdPatch) (models.Ad, error) {
	row := wire.AdPatchToRow(patch)
	if len(row) == 0 {
		return models.Ad{}, fail("updateAd", errEmptyPatch)
	}
	q, args := updateSQL("ads", row, id, wire.AdColumns)
	var r wire.AdRow
	if err := g.conn.QueryRowContext(ctx, q, args...).Scan(r.Fields()...); err != nil {
		return models.Ad{}, fail("updateAd", err)
	}
	return wire.AdFromRow(r), nil
}

func (g *Gateway) DeleteAd(ctx context.Context, id string) error {
	if _, err := g.conn.ExecContext(ctx, "DELETE FROM ads WHERE id = $1", id); err != nil {
		return fail("deleteAd", err)
	}
	return nil
}

// IncrementAdClick bumps the click counter with a read-increment-write. If
// the read itself fails the increment is skipped, not retried.
func (g *Gateway) IncrementAdClick(ctx context.Context, id string) {
	g.incrementCounter(ctx, "click_count", id)
}

func (g *Gateway) IncrementAdView(ctx context.Context, id string) {
	g.incrementCounter(ctx, "view_count", id)
}

func (g *Gateway) incrementCounter(ctx context.Context, column, id string) {
	var current int
	q := fmt.Sprintf("SELECT COALESCE(%s, 0) FROM ads WHERE id = $1", column)
	if err := g.conn.QueryRowContext(ctx, q, id).Scan(&current); err != nil {
		log.Printf("remote: read %s for ad %s skipped: %v", column, id, err)
		obs.RemoteFailure("incrementAd")
		return
	}
	upd := fmt.Sprintf("UPDATE ads SET %s = $1 WHERE id = $2", column)
	if _, err := g.conn.ExecContext(ctx, upd, current+1, id); err != nil {
		log.Printf("remote: write %s for ad %s: %v", column, id, err)
		obs.RemoteFailure("incrementAd")
	}
}
