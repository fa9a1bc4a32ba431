package models

// Apply merges the non-nil patch fields into the event. Used both for the
// optimistic in-memory merge and for local mirror updates, so the two stay
// consistent.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Organizer != nil {
		e.Organizer = *p.Organizer
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Coords != nil {
		c := *p.Coords
		e.Coords = &c
	}
	if p.Distance != nil {
		e.Distance = *p.Distance
	}
	if p.ParticipantCount != nil {
		e.ParticipantCount = *p.ParticipantCount
	}
	if p.IsRegistered != nil {
		e.IsRegistered = *p.IsRegistered
	}
	if p.IsPremium != nil {
		e.IsPremium = *p.IsPremium
	}
	if p.Price != nil {
		e.Price = *p.Price
	}
	if p.Features != nil {
		e.Features = *p.Features
	}
	if p.MediaType != nil {
		e.MediaType = *p.MediaType
	}
	if p.VideoURL != nil {
		e.VideoURL = *p.VideoURL
	}
	if p.BackgroundMusic != nil {
		e.BackgroundMusic = *p.BackgroundMusic
	}
	if p.MusicTitle != nil {
		e.MusicTitle = *p.MusicTitle
	}
	if p.PromoText != nil {
		e.PromoText = *p.PromoText
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.RejectionReason != nil {
		e.RejectionReason = *p.RejectionReason
	}
	if p.CreatedBy != nil {
		e.CreatedBy = *p.CreatedBy
	}
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Following != nil {
		u.Following = *p.Following
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.SpaceName != nil {
		u.SpaceName = *p.SpaceName
	}
	if p.OrganizerName != nil {
		u.OrganizerName = *p.OrganizerName
	}
}

func (p AdPatch) Apply(a *Ad) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.Link != nil {
		a.Link = *p.Link
	}
	if p.Sponsor != nil {
		a.Sponsor = *p.Sponsor
	}
	if p.SponsorLogo != nil {
		a.SponsorLogo = *p.SponsorLogo
	}
	if p.CTAText != nil {
		a.CTAText = *p.CTAText
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
	if p.StartDate != nil {
		t := *p.StartDate
		a.StartDate = &t
	}
	if p.EndDate != nil {
		t := *p.EndDate
		a.EndDate = &t
	}
	if p.Position != nil {
		a.Position = *p.Position
	}
	if p.CreatedBy != nil {
		a.CreatedBy = *p.CreatedBy
	}
}
