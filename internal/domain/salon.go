package domain

import (
	"time"
)

// MaxSalonImages caps the number of images a salon listing may carry.
const MaxSalonImages = 6

// Salon is a business listing owned by the user who created it.
//
// AvgRating is derived state: it always equals the arithmetic mean of the
// ratings of the salon's current reviews (0 when there are none) and is
// written only by the rating aggregator, never from client input.
type Salon struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Email     string    `json:"email"`
	Website   string    `json:"website,omitempty"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Services  []string  `json:"services"`
	Images    []string  `json:"images"`
	AvgRating float64   `json:"avg_rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
