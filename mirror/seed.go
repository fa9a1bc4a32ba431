package mirror

import (
	"fmt"
	mathrand "math/rand"

	"pdvstar/ids"
	"pdvstar/models"
)

// Seed structure is fixed (zones, organizers, phrasing); only the per-event
// jitter is randomized: coordinate offset, a date inside the next 14 days,
// the premium flag (~20%), and a price range when premium.

type seedZone struct {
	name string
	lat  float64
	lng  float64
}

var seedZones = []seedZone{
	{"Yopougon, Abidjan", 5.30966, -3.99},
	{"Marcory, Abidjan", 5.305, -3.97},
	{"Cocody, Abidjan", 5.3599, -3.9872},
	{"Treichville, Abidjan", 5.2931, -4.0126},
	{"Plateau, Abidjan", 5.3236, -4.0227},
	{"Abobo, Abidjan", 5.4326, -4.0419},
	{"Koumassi, Abidjan", 5.2888, -3.9463},
	{"Grand-Bassam", 5.20, -3.73},
}

var seedOrganizers = []string{
	"Tonton Jules",
	"Beach Club Étoile",
	"Fan Zone 225",
	"Maquis Le Réveil",
	"Espace Akwaba",
	"DJ Kedjevara Events",
	"La Terrasse VIP",
}

var seedTitles = []string{
	"Soirée Concert Rumba chez %s",
	"Soirée DJ Mix — %s",
	"Match CAN sur écran géant — %s",
	"Nuit Coupé-Décalé avec %s",
	"Afterwork Afrobeat chez %s",
	"Karaoké géant — %s",
}

var seedDescriptions = []string{
	"La meilleure ambiance de la ville ! Venez nombreux, ambiance 100% locale.",
	"Les meilleurs DJ de la capitale mixent les hits Coupé-Décalé et Afrobeat.",
	"Ambiance de feu garantie, venez supporter les Éléphants !",
	"Contenu exclusif, invités surprises et animations toute la nuit.",
}

var seedFeatures = []string{"Parking gratuit", "Espace VIP", "Bar ouvert", "Sécurité assurée"}

// generateSeed builds the fallback dataset. Caller holds the lock.
func (s *Store) generateSeed() []models.Event {
	events := make([]models.Event, 0, s.seedCount)
	now := s.now()
	for i := 0; i < s.seedCount; i++ {
		zone := seedZones[i%len(seedZones)]
		organizer := seedOrganizers[i%len(seedOrganizers)]
		id := ids.New()

		e := models.Event{
			ID:          id,
			Title:       fmt.Sprintf(seedTitles[i%len(seedTitles)], organizer),
			Description: seedDescriptions[i%len(seedDescriptions)],
			// Scheduled inside the next 14 days.
			Date:      now.AddDate(0, 0, mathrand.Intn(14)),
			Location:  zone.name,
			Organizer: organizer,
			Image:     placeholderImage(id),
			Coords: &models.Coordinates{
				Lat: zone.lat + (mathrand.Float64()-0.5)*0.02,
				Lng: zone.lng + (mathrand.Float64()-0.5)*0.02,
			},
			Distance:         fmt.Sprintf("%.1f km", 0.5+mathrand.Float64()*14.5),
			ParticipantCount: 10 + mathrand.Intn(340),
			MediaType:        "image",
			Features:         seedFeatures[:1+i%len(seedFeatures)],
			Status:           models.EventApproved,
			CreatedAt:        now,
		}
		if mathrand.Float64() < 0.2 {
			e.IsPremium = true
			e.Price = float64(1000 * (1 + mathrand.Intn(10)))
		}
		events = append(events, e)
	}
	return events
}
