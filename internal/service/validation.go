package service

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/dto"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

const (
	msgLeadMissing     = "Name, email, country code, phone, and message are required"
	msgInvalidEmail    = "Please enter a valid email address"
	msgReviewMissing   = "Name, rating, and message are required"
	msgRatingRange     = "Rating must be between 1 and 5"
	defaultPhoneRegion = "US"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// LeadSubmission is a contact form payload that passed submission checks.
type LeadSubmission struct {
	Name        string
	Email       string
	CountryCode string
	Phone       string
	Company     string
	Message     string
	Service     string
}

// ReviewSubmission is a review payload that passed submission checks.
type ReviewSubmission struct {
	Name    string
	Company string
	Rating  int
	Message string
}

// IsValidEmail reports whether value matches the accepted email shape.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidateLead trims the payload, checks required fields and the email
// format, and lower-cases the email.
func ValidateLead(req dto.CreateLeadRequest) (LeadSubmission, error) {
	sub := LeadSubmission{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		CountryCode: strings.TrimSpace(req.CountryCode),
		Phone:       strings.TrimSpace(req.Phone),
		Company:     strings.TrimSpace(req.Company),
		Message:     strings.TrimSpace(req.Message),
		Service:     strings.TrimSpace(req.Service),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", sub.Name},
		{"email", sub.Email},
		{"countryCode", sub.CountryCode},
		{"phone", sub.Phone},
		{"message", sub.Message},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return LeadSubmission{}, &SubmissionError{Kind: KindMissingField, Message: msgLeadMissing, Fields: missing}
	}

	if !IsValidEmail(sub.Email) {
		return LeadSubmission{}, &SubmissionError{Kind: KindInvalidFormat, Message: msgInvalidEmail, Fields: []string{"email"}}
	}
	sub.Email = strings.ToLower(sub.Email)

	return sub, nil
}

// ValidateReview trims the payload and checks required fields and the rating range.
func ValidateReview(req dto.CreateReviewRequest) (ReviewSubmission, error) {
	sub := ReviewSubmission{
		Name:    strings.TrimSpace(req.Name),
		Company: strings.TrimSpace(req.Company),
		Message: strings.TrimSpace(req.Message),
	}

	var missing []string
	if sub.Name == "" {
		missing = append(missing, "name")
	}
	if req.Rating == nil {
		missing = append(missing, "rating")
	}
	if sub.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return ReviewSubmission{}, &SubmissionError{Kind: KindMissingField, Message: msgReviewMissing, Fields: missing}
	}

	if *req.Rating < 1 || *req.Rating > 5 {
		return ReviewSubmission{}, &SubmissionError{Kind: KindOutOfRange, Message: msgRatingRange, Fields: []string{"rating"}}
	}
	sub.Rating = *req.Rating

	return sub, nil
}

// ValidateReviewStatus accepts only the exact moderation states. The value is
// neither trimmed nor case-folded.
func ValidateReviewStatus(status string) (string, error) {
	if !entity.IsReviewStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// normalizePhone derives an E.164 number from the dialling code and local
// number, falling back to region when the code does not parse. It returns
// an empty string when no valid number can be formed.
func normalizePhone(countryCode, phone, region string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}

	candidates := []string{phone}
	if code := strings.TrimPrefix(strings.TrimSpace(countryCode), "+"); isDialCode(code) && !strings.HasPrefix(phone, "+") {
		candidates = append([]string{"+" + code + phone}, candidates...)
	}

	for _, raw := range candidates {
		number, err := phonenumbers.Parse(raw, region)
		if err != nil {
			continue
		}
		if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
			continue
		}
		return phonenumbers.Format(number, phonenumbers.E164)
	}
	return ""
}

func isDialCode(code string) bool {
	if code == "" || len(code) > 3 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
