package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead statuses. Only admin tooling moves a lead past LeadStatusNew.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusClosed    = "closed"
)

// DefaultLeadServices is the service set used when none is configured.
var DefaultLeadServices = []string{"website-creation", "marketing", "general"}

// Lead is a contact-form submission from a prospective client.
type Lead struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Email       string    `json:"email" validate:"required,leademail"`
	CountryCode string    `json:"countryCode" validate:"required,max=5"`
	Phone       string    `json:"phone" validate:"required,max=20"`
	PhoneE164   string    `json:"phoneE164,omitempty"`
	Company     string    `json:"company" validate:"max=100"`
	Message     string    `json:"message" validate:"required,max=1000"`
	Service     string    `json:"service" validate:"required,leadservice"`
	Status      string    `json:"status" validate:"required,oneof=new contacted qualified converted closed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
