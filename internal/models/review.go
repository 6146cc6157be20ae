package models

import "time"

// Review is a rating plus comment attached to exactly one campground.
type Review struct {
	ID           string    `json:"id"`
	CampgroundID string    `json:"campground_id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	Rating       int       `json:"rating"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewInput is bound from the review form. Rating 1 and 5 are both valid.
type ReviewInput struct {
	Text   string `form:"text" validate:"required"`
	Rating int    `form:"rating" validate:"required,min=1,max=5"`
}
