package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

func TestSchemaValidator_Lead(t *testing.T) {
	v := NewSchemaValidator([]string{"marketing", "general"})
	lead := entity.Lead{
		ID:          uuid.New(),
		Name:        "Ana",
		Email:       "ana@example.com",
		CountryCode: "+1",
		Phone:       "5551234567",
		Message:     "Hello",
		Service:     "general",
		Status:      entity.LeadStatusNew,
	}
	if err := v.Lead(&lead); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lead.Name = strings.Repeat("n", 101)
	lead.CountryCode = "+123456"
	lead.Service = "website-creation"
	lead.Status = "archived"

	err := v.Lead(&lead)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Error() != "Validation failed" || len(schemaErr.Errors) != 4 {
		t.Fatalf("expected four aggregated errors, got %v", schemaErr.Errors)
	}
	joined := strings.Join(schemaErr.Errors, "; ")
	for _, want := range []string{"name cannot exceed 100", "countryCode cannot exceed 5", "service must be one of: marketing, general", "status must be one of"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in %s", want, joined)
		}
	}
}

func TestSchemaValidator_Review(t *testing.T) {
	v := NewSchemaValidator(nil)
	review := entity.Review{Name: "Bo", Rating: 9, Message: strings.Repeat("m", 501), Status: entity.ReviewStatusPending}

	err := v.Review(&review)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) || len(schemaErr.Errors) != 2 {
		t.Fatalf("expected rating and message errors, got %v", err)
	}
	if schemaErr.Errors[0] != "rating must be at most 5" {
		t.Fatalf("unexpected rating message: %s", schemaErr.Errors[0])
	}
}
