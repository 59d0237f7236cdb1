package gift

import "time"

const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusPurchased = "purchased"
)

type Gift struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	WeddingID   string    `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Description *string   ``
	Price       float64   `gorm:"not null;default:0"`
	Currency    string    `gorm:"type:varchar(8);not null;default:USD"`
	Category    string    `gorm:"not null;default:other"`
	Status      string    `gorm:"type:varchar(16);not null;default:available"`
	Link        *string   ``
	ReservedBy  *string   ``
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Update carries partial gift edits; nil means unchanged.
type Update struct {
	Name        *string
	Description *string
	Price       *float64
	Currency    *string
	Category    *string
	Status      *string
	Link        *string
	ReservedBy  *string
}

// Stats aggregates a wedding's registry.
type Stats struct {
	Total          int            `json:"total"`
	Available      int            `json:"available"`
	Reserved       int            `json:"reserved"`
	Purchased      int            `json:"purchased"`
	TotalValue     float64        `json:"totalValue"`
	PurchasedValue float64        `json:"purchasedValue"`
	ByCategory     map[string]int `json:"byCategory"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusAvailable, StatusReserved, StatusPurchased:
		return true
	}
	return false
}
