package models

import "time"

// Review is a user's rating of a tour. A user can review a tour once.
type Review struct {
	ID        int64     `json:"id"`
	Review    string    `json:"review" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	CreatedAt time.Time `json:"createdAt"`
	TourID    int64     `json:"tour"`
	UserID    int64     `json:"user"`

	// UserName and UserPhoto are populated on reads for display.
	UserName  string `json:"userName,omitempty"`
	UserPhoto string `json:"userPhoto,omitempty"`
}

// ReviewUpdate carries a partial review update.
type ReviewUpdate struct {
	Review *string `json:"review,omitempty" validate:"omitempty,min=1"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}
