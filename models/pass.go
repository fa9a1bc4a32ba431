package models

import "time"

const PassActive = "active"

type AccessPass struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	PassType      string    `json:"passType"`
	PurchasedAt   time.Time `json:"purchasedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentRef    string    `json:"paymentRef"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IsValid reports whether the pass grants entitlement at the given instant.
func (p AccessPass) IsValid(now time.Time) bool {
	return p.Status == PassActive && p.ExpiresAt.After(now)
}

// PassTier is one entry of the fixed tarification catalog. The catalog is not
// configurable at runtime.
type PassTier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	DurationDays int      `json:"durationDays"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Popular      bool     `json:"popular,omitempty"`
}

var PassCatalog = map[string]PassTier{
	"decouverte": {
		ID:           "decouverte",
		Name:         "Découverte",
		Price:        5000,
		Currency:     "CFA",
		DurationDays: 3,
		Description:  "Accès illimité pendant 3 jours",
		Features:     []string{"Accès aux événements premium", "Contenu exclusif 3 jours", "Badge Découverte"},
	},
	"standard": {
		ID:           "standard",
		Name:         "Standard",
		Price:        15000,
		Currency:     "CFA",
		DurationDays: 30,
		Description:  "Accès complet pendant 1 mois",
		Features:     []string{"Accès aux événements premium", "Contenu exclusif 1 mois", "Badge Standard", "Priorité notifications"},
		Popular:      true,
	},
	"premium": {
		ID:           "premium",
		Name:         "Premium",
		Price:        30000,
		Currency:     "CFA",
		DurationDays: 30,
		Description:  "Accès VIP pendant 1 mois",
		Features:     []string{"Accès illimité tous événements", "Contenu VIP exclusif", "Badge Premium Or", "Priorité notifications", "Support prioritaire", "Pas de publicités"},
	},
}

// PaymentMethod identifiers are presentation-only; no verification happens
// in this service.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var PaymentMethods = []PaymentMethod{
	{ID: "orange_money", Name: "Orange Money"},
	{ID: "mtn_momo", Name: "MTN MoMo"},
	{ID: "wave", Name: "Wave"},
	{ID: "card", Name: "Carte bancaire"},
}
