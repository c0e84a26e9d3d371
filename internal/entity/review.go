package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review moderation states.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// PublicReviewsLimit caps the number of approved reviews served publicly.
const PublicReviewsLimit = 50

// Review is a customer testimonial awaiting or past moderation.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Company   string    `json:"company" validate:"max=100"`
	Rating    int       `json:"rating" validate:"min=1,max=5"`
	Message   string    `json:"message" validate:"required,max=500"`
	Status    string    `json:"status" validate:"required,oneof=pending approved rejected"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsReviewStatus reports whether status is one of the moderation states.
func IsReviewStatus(status string) bool {
	switch status {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}
