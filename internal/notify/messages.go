package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

func adminAlert(to string, lead entity.Lead) EmailMessage {
	company := lead.Company
	if company == "" {
		company = "Not provided"
	}
	phone := strings.TrimSpace(lead.CountryCode + " " + lead.Phone)
	received := lead.CreatedAt.UTC().Format(time.RFC1123)

	text := fmt.Sprintf("New lead received\n\nName: %s\nEmail: %s\nPhone: %s\nCompany: %s\nService: %s\nMessage: %s\nDate: %s\n",
		lead.Name, lead.Email, phone, company, lead.Service, lead.Message, received)

	var b strings.Builder
	b.WriteString("<h2>New Lead Received</h2>")
	for _, row := range [][2]string{
		{"Name", lead.Name},
		{"Email", lead.Email},
		{"Phone", phone},
		{"Company", company},
		{"Service", lead.Service},
		{"Message", lead.Message},
		{"Date", received},
	} {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>", row[0], html.EscapeString(row[1]))
	}

	return EmailMessage{
		To:      to,
		Subject: "New Lead: " + lead.Name,
		Text:    text,
		HTML:    b.String(),
	}
}

func userConfirmation(lead entity.Lead, signature string) EmailMessage {
	if signature == "" {
		signature = "The team"
	}
	text := fmt.Sprintf("Thank you, %s!\n\nWe have received your inquiry and will get back to you within 24 hours.\n\nBest regards,\n%s\n",
		lead.Name, signature)
	body := fmt.Sprintf("<h2>Thank you, %s!</h2><p>We have received your inquiry and will get back to you within 24 hours.</p><p>Best regards,<br>%s</p>",
		html.EscapeString(lead.Name), html.EscapeString(signature))

	return EmailMessage{
		To:      lead.Email,
		ToName:  lead.Name,
		Subject: "Thank you for your interest!",
		Text:    text,
		HTML:    body,
	}
}
