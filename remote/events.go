package remote

import (
	"context"
	"fmt"

	"pdvstar/models"
	"pdvstar/wire"
)

// FetchEvents returns all events, newest first.
func (g *Gateway) FetchEvents(ctx context.Context) ([]models.Event, error) {
	q := fmt.Sprintf("SELECT %s FROM events ORDER BY created_at DESC", wire.EventColumns)
	rows, err := g.conn.QueryContext(ctx, q)
	if err != nil {
		return nil, fail("fetchEvents", err)
	}
	defer rows.Close()

	var out []models.Event
	for rows.Next() {
		var r wire.EventRow
		if err := rows.Scan(r.Fields()...); err != nil {
			return nil, fail("fetchEvents", err)
		}
		out = append(out, wire.EventFromRow(r))
	}
	if err := rows.Err(); err != nil {
		return nil, fail("fetchEvents", err)
	}
	return out, nil
}

func (g *Gateway) CreateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	q, args := insertSQL("events", wire.EventToRow(e), wire.EventColumns)
	var r wire.EventRow
	if err := g.conn.QueryRowContext(ctx, q, args...).Scan(r.Fields()...); err != nil {
		return models.Event{}, fail("createEvent", err)
	}
	return wire.EventFromRow(r), nil
}

func (g *Gateway) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (models.Event, error) {
	row := wire.EventPatchToRow(patch)
	if len(row) == 0 {
		return models.Event{}, fail("updateEvent", errEmptyPatch)
	}
	q, args := updateSQL("events", row, id, wire.EventColumns)
	var r wire.EventRow
	if err := g.conn.QueryRowContext(ctx, q, args...).Scan(r.Fields()...); err != nil {
		return models.Event{}, fail("updateEvent", err)
	}
	return wire.EventFromRow(r), nil
}

func (g *Gateway) DeleteEvent(ctx context.Context, id string) error {
	if _, err := g.conn.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id); err != nil {
		return fail("deleteEvent", err)
	}
	return nil
}

// SeedEvents bulk-inserts the first-run dataset and returns the rows the
// store confirmed. An empty result means the remote is still effectively
// empty and the caller keeps its local copy.
func (g *Gateway) SeedEvents(ctx context.Context, events []models.Event) ([]models.Event, error) {
	tx, err := g.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fail("seedEvents", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := make([]models.Event, 0, len(events))
	for _, e := range events {
		q, args := insertSQL("events", wire.EventToRow(e), wire.EventColumns)
		var r wire.EventRow
		if err := tx.QueryRowContext(ctx, q, args...).Scan(r.Fields()...); err != nil {
			return nil, fail("seedEvents", err)
		}
		inserted = append(inserted, wire.EventFromRow(r))
	}
	if err := tx.Commit(); err != nil {
		return nil, fail("seedEvents", err)
	}
	return inserted, nil
}
