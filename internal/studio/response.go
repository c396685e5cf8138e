package studio

import (
	"time"

	"studio-listing-backend/internal/model"
)

// Response is the public JSON shape of a studio.
type Response struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	PricePerHour float64   `json:"pricePerHour"`
	ImageURL     *string   `json:"imageUrl"`
	ContactEmail *string   `json:"contactEmail"`
	ContactPhone *string   `json:"contactPhone"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewResponse maps a stored studio onto its response shape.
func NewResponse(s model.Studio) Response {
	return Response{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Location:     s.Location,
		PricePerHour: s.PricePerHour,
		ImageURL:     s.ImageURL,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		IsAvailable:  s.IsAvailable,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// NewResponses never returns nil, so an empty result encodes as [].
func NewResponses(studios []model.Studio) []Response {
	out := make([]Response, 0, len(studios))
	for _, s := range studios {
		out = append(out, NewResponse(s))
	}
	return out
}
