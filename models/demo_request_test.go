package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSummary(t *testing.T) {
	id := primitive.NewObjectID()
	req := DemoRequest{
		ID:                 id,
		FullName:           "Jo Smith",
		Email:              "jo@example.com",
		OrganizationName:   "Acme Labs",
		InterestedProducts: []string{"LIMS", "ELN", "Inventory"},
		Status:             StatusContacted,
		SubmittedAt:        time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
	}

	s := req.Summary()
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "Jo Smith", s.Name)
	assert.Equal(t, "jo@example.com", s.Email)
	assert.Equal(t, "Acme Labs", s.Organization)
	assert.Equal(t, "LIMS, ELN, Inventory", s.Products)
	assert.Equal(t, StatusContacted, s.Status)
	assert.Equal(t, "August 28, 2026", s.SubmittedAt)
}

func TestSummarySingleProduct(t *testing.T) {
	req := DemoRequest{
		InterestedProducts: []string{"LIMS"},
		SubmittedAt:        time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	s := req.Summary()
	assert.Equal(t, "LIMS", s.Products)
	assert.Equal(t, "January 2, 2026", s.SubmittedAt)
}
