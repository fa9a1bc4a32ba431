package wire

import (
	"database/sql"

	"pdvstar/models"
)

const PassColumns = "id, user_id, pass_type, purchased_at, expires_at, payment_method, payment_ref, status, created_at"

type PassRow struct {
	ID            string
	UserID        sql.NullString
	PassType      sql.NullString
	PurchasedAt   sql.NullTime
	ExpiresAt     sql.NullTime
	PaymentMethod sql.NullString
	PaymentRef    sql.NullString
	Status        sql.NullString
	CreatedAt     sql.NullTime
}

func (r *PassRow) Fields() []any {
	return []any{
		&r.ID, &r.UserID, &r.PassType, &r.PurchasedAt, &r.ExpiresAt,
		&r.PaymentMethod, &r.PaymentRef, &r.Status, &r.CreatedAt,
	}
}

func PassToRow(p models.AccessPass) map[string]any {
	row := map[string]any{
		"user_id":      p.UserID,
		"pass_type":    p.PassType,
		"purchased_at": p.PurchasedAt,
		"expires_at":   p.ExpiresAt,
		"status":       defaultString(p.Status, models.PassActive),
	}
	if p.PaymentMethod != "" {
		row["payment_method"] = p.PaymentMethod
	}
	if p.PaymentRef != "" {
		row["payment_ref"] = p.PaymentRef
	}
	return row
}

func PassFromRow(r PassRow) models.AccessPass {
	return models.AccessPass{
		ID:            r.ID,
		UserID:        r.UserID.String,
		PassType:      r.PassType.String,
		PurchasedAt:   r.PurchasedAt.Time,
		ExpiresAt:     r.ExpiresAt.Time,
		PaymentMethod: r.PaymentMethod.String,
		PaymentRef:    r.PaymentRef.String,
		Status:        defaultString(r.Status.String, models.PassActive),
		CreatedAt:     r.CreatedAt.Time,
	}
}
