package domain

import "time"

type Role string

const (
	RoleUser       Role = "user"
	RoleHotelOwner Role = "hotelOwner"
)

// User mirrors the account record pushed by the external identity provider.
// The ID is the provider's subject identifier, not a local sequence.
type User struct {
	ID                   string    `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	Image                string    `json:"image,omitempty"`
	Role                 Role      `json:"role"`
	RecentSearchedCities []string  `json:"recent_searched_cities,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
