package models_test

import (
	"encoding/json"
	"testing"

	"github.com/dalemusser/seekerhub/internal/domain/models"
)

func TestApplication_DecodeNumericID(t *testing.T) {
	raw := `{"id": 42, "job_title": "Backend Developer", "company": "Acme", "status": "pending", "applied_date": "2024-01-05"}`

	var app models.Application
	if err := json.Unmarshal([]byte(raw), &app); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if app.ID != "42" {
		t.Errorf("ID: got %q, want %q", app.ID, "42")
	}
	if app.JobTitle != "Backend Developer" {
		t.Errorf("JobTitle: got %q, want %q", app.JobTitle, "Backend Developer")
	}
	if app.AppliedDate != "2024-01-05" {
		t.Errorf("AppliedDate: got %q, want %q", app.AppliedDate, "2024-01-05")
	}
}

func TestApplication_DecodeStringID(t *testing.T) {
	var app models.Application
	if err := json.Unmarshal([]byte(`{"id": "a-17"}`), &app); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if app.ID != "a-17" {
		t.Errorf("ID: got %q, want %q", app.ID, "a-17")
	}
}

func TestApplication_DecodeNullID(t *testing.T) {
	var app models.Application
	if err := json.Unmarshal([]byte(`{"id": null}`), &app); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if app.ID != "" {
		t.Errorf("ID: got %q, want empty", app.ID)
	}
}

func TestApplication_DecodeInvalidID(t *testing.T) {
	var app models.Application
	if err := json.Unmarshal([]byte(`{"id": true}`), &app); err == nil {
		t.Error("expected error for boolean id")
	}
}

func TestStats_MissingFieldsDefaultToZero(t *testing.T) {
	var s models.Stats
	if err := json.Unmarshal([]byte(`{"total": 7, "pending": null}`), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if s.Total != 7 {
		t.Errorf("Total: got %d, want 7", s.Total)
	}
	if s.Pending != 0 {
		t.Errorf("Pending: got %d, want 0", s.Pending)
	}
	if s.Accepted != 0 || s.Rejected != 0 {
		t.Errorf("Accepted/Rejected: got %d/%d, want 0/0", s.Accepted, s.Rejected)
	}
}
