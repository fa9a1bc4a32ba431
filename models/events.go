package models

import "time"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Event statuses set by moderation.
const (
	EventApproved = "approved"
	EventPending  = "pending"
	EventRejected = "rejected"
)

type Event struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Date             time.Time    `json:"date"`
	Location         string       `json:"location"`
	Organizer        string       `json:"organizer"`
	Image            string       `json:"image"`
	Coords           *Coordinates `json:"coords,omitempty"`
	Distance         string       `json:"distance"`
	ParticipantCount int          `json:"participantCount"`
	IsRegistered     bool         `json:"isRegistered"`
	IsPremium        bool         `json:"isPremium"`
	Price            float64      `json:"price"`
	Features         []string     `json:"features"`
	MediaType        string       `json:"mediaType"`
	VideoURL         string       `json:"videoUrl"`
	BackgroundMusic  string       `json:"backgroundMusic"`
	MusicTitle       string       `json:"musicTitle"`
	PromoText        string       `json:"promoText"`
	Status           string       `json:"status"`
	RejectionReason  string       `json:"rejectionReason"`
	CreatedBy        string       `json:"createdBy,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// EventPatch carries a partial update; nil fields are left untouched by the
// mapper so unspecified columns are never clobbered.
type EventPatch struct {
	Title            *string
	Description      *string
	Date             *time.Time
	Location         *string
	Organizer        *string
	Image            *string
	Coords           *Coordinates
	Distance         *string
	ParticipantCount *int
	IsRegistered     *bool
	IsPremium        *bool
	Price            *float64
	Features         *[]string
	MediaType        *string
	VideoURL         *string
	BackgroundMusic  *string
	MusicTitle       *string
	PromoText        *string
	Status           *string
	RejectionReason  *string
	CreatedBy        *string
}
