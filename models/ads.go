package models

import "time"

type Ad struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Link        string     `json:"link"`
	Sponsor     string     `json:"sponsor"`
	SponsorLogo string     `json:"sponsorLogo"`
	CTAText     string     `json:"ctaText"`
	IsActive    bool       `json:"isActive"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	ClickCount  int        `json:"clickCount"`
	ViewCount   int        `json:"viewCount"`
	Position    int        `json:"position"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type AdPatch struct {
	Title       *string
	Description *string
	Image       *string
	Link        *string
	Sponsor     *string
	SponsorLogo *string
	CTAText     *string
	IsActive    *bool
	StartDate   *time.Time
	EndDate     *time.Time
	Position    *int
	CreatedBy   *string
}
