package models

import "time"

// Campground is the primary user-created listing.
type Campground struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CampgroundInput is bound from the new/edit forms and checked before any
// store call. Updates resubmit the full object; there are no partial edits.
// Price is a pointer so a missing field is distinguishable from 0, which is
// a valid price.
type CampgroundInput struct {
	Title       string   `form:"title" validate:"required"`
	Location    string   `form:"location" validate:"required"`
	Price       *float64 `form:"price" validate:"required,gte=0"`
	Description string   `form:"description" validate:"required"`
	Image       string   `form:"image" validate:"required"`
}
