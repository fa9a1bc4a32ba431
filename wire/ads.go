package wire

import (
	"database/sql"

	"pdvstar/models"
)

const AdColumns = "id, title, description, image, link, sponsor, sponsor_logo, cta_text, " +
	"is_active, start_date, end_date, click_count, view_count, position, created_by, created_at"

type AdRow struct {
	ID          string
	Title       sql.NullString
	Description sql.NullString
	Image       sql.NullString
	Link        sql.NullString
	Sponsor     sql.NullString
	SponsorLogo sql.NullString
	CTAText     sql.NullString
	IsActive    sql.NullBool
	StartDate   sql.NullTime
	EndDate     sql.NullTime
	ClickCount  sql.NullInt64
	ViewCount   sql.NullInt64
	Position    sql.NullInt64
	CreatedBy   sql.NullString
	CreatedAt   sql.NullTime
}

func (r *AdRow) Fields() []any {
	return []any{
		&r.ID, &r.Title, &r.Description, &r.Image, &r.Link, &r.Sponsor, &r.SponsorLogo,
		&r.CTAText, &r.IsActive, &r.StartDate, &r.EndDate, &r.ClickCount, &r.ViewCount,
		&r.Position, &r.CreatedBy, &r.CreatedAt,
	}
}

func AdToRow(a models.Ad) map[string]any {
	row := map[string]any{
		"title":       a.Title,
		"description": a.Description,
		"image":       a.Image,
		"link":        a.Link,
		"sponsor":     a.Sponsor,
		"cta_text":    defaultString(a.CTAText, "En savoir plus"),
		"is_active":   a.IsActive,
		"position":    a.Position,
	}
	if a.SponsorLogo != "" {
		row["sponsor_logo"] = a.SponsorLogo
	}
	if a.StartDate != nil {
		row["start_date"] = *a.StartDate
	}
	if a.EndDate != nil {
		row["end_date"] = *a.EndDate
	}
	if a.CreatedBy != "" {
		row["created_by"] = a.CreatedBy
	}
	return row
}

func AdPatchToRow(p models.AdPatch) map[string]any {
	row := map[string]any{}
	if p.Title != nil {
		row["title"] = *p.Title
	}
	if p.Description != nil {
		row["description"] = *p.Description
	}
	if p.Image != nil {
		row["image"] = *p.Image
	}
	if p.Link != nil {
		row["link"] = *p.Link
	}
	if p.Sponsor != nil {
		row["sponsor"] = *p.Sponsor
	}
	if p.SponsorLogo != nil {
		row["sponsor_logo"] = *p.SponsorLogo
	}
	if p.CTAText != nil {
		row["cta_text"] = *p.CTAText
	}
	if p.IsActive != nil {
		row["is_active"] = *p.IsActive
	}
	if p.StartDate != nil {
		row["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		row["end_date"] = *p.EndDate
	}
	if p.Position != nil {
		row["position"] = *p.Position
	}
	if p.CreatedBy != nil {
		row["created_by"] = *p.CreatedBy
	}
	return row
}

func AdFromRow(r AdRow) models.Ad {
	a := models.Ad{
		ID:          r.ID,
		Title:       r.Title.String,
		Description: r.Description.String,
		Image:       r.Image.String,
		Link:        defaultString(r.Link.String, "#"),
		Sponsor:     r.Sponsor.String,
		SponsorLogo: r.SponsorLogo.String,
		CTAText:     defaultString(r.CTAText.String, "En savoir plus"),
		IsActive:    !r.IsActive.Valid || r.IsActive.Bool,
		ClickCount:  int(r.ClickCount.Int64),
		ViewCount:   int(r.ViewCount.Int64),
		Position:    int(r.Position.Int64),
		CreatedBy:   r.CreatedBy.String,
		CreatedAt:   r.CreatedAt.Time,
	}
	if r.StartDate.Valid {
		t := r.StartDate.Time
		a.StartDate = &t
	}
	if r.EndDate.Valid {
		t := r.EndDate.Time
		a.EndDate = &t
	}
	return a
}
