package wire

import (
	"database/sql"

	"pdvstar/models"
)

// EventColumns is the ordered select list matching EventRow.Scan targets.
const EventColumns = "id, title, description, date, location, organizer, image, " +
	"coords_lat, coords_lng, distance, participant_count, is_registered, is_premium, " +
	"price, features, type, video_url, background_music, music_title, promo_text, " +
	"status, rejection_reason, created_by, created_at"

// EventRow mirrors one row of the events table.
type EventRow struct {
	ID               string
	Title            sql.NullString
	Description      sql.NullString
	Date             sql.NullTime
	Location         sql.NullString
	Organizer        sql.NullString
	Image            sql.NullString
	CoordsLat        sql.NullFloat64
	CoordsLng        sql.NullFloat64
	Distance         sql.NullString
	ParticipantCount sql.NullInt64
	IsRegistered     sql.NullBool
	IsPremium        sql.NullBool
	Price            sql.NullFloat64
	Features         []byte
	Type             sql.NullString
	VideoURL         sql.NullString
	BackgroundMusic  sql.NullString
	MusicTitle       sql.NullString
	PromoText        sql.NullString
	Status           sql.NullString
	RejectionReason  sql.NullString
	CreatedBy        sql.NullString
	CreatedAt        sql.NullTime
}

// Fields returns scan targets in EventColumns order.
func (r *EventRow) Fields() []any {
	return []any{
		&r.ID, &r.Title, &r.Description, &r.Date, &r.Location, &r.Organizer, &r.Image,
		&r.CoordsLat, &r.CoordsLng, &r.Distance, &r.ParticipantCount, &r.IsRegistered,
		&r.IsPremium, &r.Price, &r.Features, &r.Type, &r.VideoURL, &r.BackgroundMusic,
		&r.MusicTitle, &r.PromoText, &r.Status, &r.RejectionReason, &r.CreatedBy,
		&r.CreatedAt,
	}
}

// EventToRow builds the insert payload for an event. Optional fields that are
// unset stay out of the payload entirely.
func EventToRow(e models.Event) map[string]any {
	row := map[string]any{
		"title":             e.Title,
		"description":       e.Description,
		"date":              e.Date,
		"location":          e.Location,
		"organizer":         e.Organizer,
		"image":             e.Image,
		"distance":          e.Distance,
		"participant_count": e.ParticipantCount,
		"is_registered":     e.IsRegistered,
		"is_premium":        e.IsPremium,
		"price":             e.Price,
		"features":          jsonList(e.Features),
		"type":              defaultString(e.MediaType, "image"),
	}
	if e.Coords != nil {
		row["coords_lat"] = e.Coords.Lat
		row["coords_lng"] = e.Coords.Lng
	}
	if e.VideoURL != "" {
		row["video_url"] = e.VideoURL
	}
	if e.BackgroundMusic != "" {
		row["background_music"] = e.BackgroundMusic
	}
	if e.MusicTitle != "" {
		row["music_title"] = e.MusicTitle
	}
	if e.PromoText != "" {
		row["promo_text"] = e.PromoText
	}
	if e.Status != "" {
		row["status"] = e.Status
	}
	if e.RejectionReason != "" {
		row["rejection_reason"] = e.RejectionReason
	}
	if e.CreatedBy != "" {
		row["created_by"] = e.CreatedBy
	}
	return row
}

// EventPatchToRow maps only the fields present on the patch.
func EventPatchToRow(p models.EventPatch) map[string]any {
	row := map[string]any{}
	if p.Title != nil {
		row["title"] = *p.Title
	}
	if p.Description != nil {
		row["description"] = *p.Description
	}
	if p.Date != nil {
		row["date"] = *p.Date
	}
	if p.Location != nil {
		row["location"] = *p.Location
	}
	if p.Organizer != nil {
		row["organizer"] = *p.Organizer
	}
	if p.Image != nil {
		row["image"] = *p.Image
	}
	if p.Coords != nil {
		row["coords_lat"] = p.Coords.Lat
		row["coords_lng"] = p.Coords.Lng
	}
	if p.Distance != nil {
		row["distance"] = *p.Distance
	}
	if p.ParticipantCount != nil {
		row["participant_count"] = *p.ParticipantCount
	}
	if p.IsRegistered != nil {
		row["is_registered"] = *p.IsRegistered
	}
	if p.IsPremium != nil {
		row["is_premium"] = *p.IsPremium
	}
	if p.Price != nil {
		row["price"] = *p.Price
	}
	if p.Features != nil {
		row["features"] = jsonList(*p.Features)
	}
	if p.MediaType != nil {
		row["type"] = *p.MediaType
	}
	if p.VideoURL != nil {
		row["video_url"] = *p.VideoURL
	}
	if p.BackgroundMusic != nil {
		row["background_music"] = *p.BackgroundMusic
	}
	if p.MusicTitle != nil {
		row["music_title"] = *p.MusicTitle
	}
	if p.PromoText != nil {
		row["promo_text"] = *p.PromoText
	}
	if p.Status != nil {
		row["status"] = *p.Status
	}
	if p.RejectionReason != nil {
		row["rejection_reason"] = *p.RejectionReason
	}
	if p.CreatedBy != nil {
		row["created_by"] = *p.CreatedBy
	}
	return row
}

// EventFromRow converts a scanned row into a fully populated event. Coords
// are kept only as a complete pair.
func EventFromRow(r EventRow) models.Event {
	e := models.Event{
		ID:               r.ID,
		Title:            r.Title.String,
		Description:      r.Description.String,
		Date:             r.Date.Time,
		Location:         r.Location.String,
		Organizer:        r.Organizer.String,
		Image:            r.Image.String,
		Distance:         defaultString(r.Distance.String, "0 km"),
		ParticipantCount: int(r.ParticipantCount.Int64),
		IsRegistered:     r.IsRegistered.Bool,
		IsPremium:        r.IsPremium.Bool,
		Price:            r.Price.Float64,
		Features:         listFromJSON(r.Features),
		MediaType:        defaultString(r.Type.String, "image"),
		VideoURL:         r.VideoURL.String,
		BackgroundMusic:  r.BackgroundMusic.String,
		MusicTitle:       r.MusicTitle.String,
		PromoText:        r.PromoText.String,
		Status:           defaultString(r.Status.String, models.EventApproved),
		RejectionReason:  r.RejectionReason.String,
		CreatedBy:        r.CreatedBy.String,
		CreatedAt:        r.CreatedAt.Time,
	}
	if r.CoordsLat.Valid && r.CoordsLng.Valid {
		e.Coords = &models.Coordinates{Lat: r.CoordsLat.Float64, Lng: r.CoordsLng.Float64}
	}
	return e
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
