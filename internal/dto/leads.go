package dto

// CreateLeadRequest captures the public contact form payload.
type CreateLeadRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Message     string `json:"message"`
	Service     string `json:"service"`
}

// EmailsSent reports which lead notifications were delivered.
type EmailsSent struct {
	Admin bool `json:"admin"`
	User  bool `json:"user"`
}

// LeadCreatedResponse is returned after a lead is stored.
type LeadCreatedResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Status     string     `json:"status"`
	EmailsSent EmailsSent `json:"emailsSent"`
}
