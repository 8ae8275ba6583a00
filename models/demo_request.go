package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IndustryType of the requesting organization.
type IndustryType string

const (
	IndustryPharmaceutical IndustryType = "pharmaceutical"
	IndustryBiotechnology  IndustryType = "biotechnology"
	IndustryClinical       IndustryType = "clinical"
	IndustryAcademic       IndustryType = "academic"
	IndustryChemical       IndustryType = "chemical"
	IndustryFood           IndustryType = "food"
	IndustryEnvironmental  IndustryType = "environmental"
	IndustryOther          IndustryType = "other"
)

// OrganizationSize is a headcount bracket.
type OrganizationSize string

const (
	OrgSize1To10    OrganizationSize = "1-10"
	OrgSize11To50   OrganizationSize = "11-50"
	OrgSize51To200  OrganizationSize = "51-200"
	OrgSize201To500 OrganizationSize = "201-500"
	OrgSize500Plus  OrganizationSize = "500+"
)

// PreferredTime is the requested demo slot. The empty string is a valid
// member: the form allows leaving the slot unselected.
type PreferredTime string

const (
	TimeMorning   PreferredTime = "morning"
	TimeAfternoon PreferredTime = "afternoon"
	TimeEvening   PreferredTime = "evening"
	TimeNone      PreferredTime = ""
)

// RequestStatus is the follow-up lifecycle of a demo request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusContacted RequestStatus = "contacted"
	StatusScheduled RequestStatus = "scheduled"
	StatusCompleted RequestStatus = "completed"
	StatusCancelled RequestStatus = "cancelled"
)

// IsValidStatus reports whether s is a member of the status enum.
func IsValidStatus(s string) bool {
	switch RequestStatus(s) {
	case StatusPending, StatusContacted, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// DemoRequest is the persisted record of one lead's submitted interest.
// Records are immutable after creation except for Status.
type DemoRequest struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName           string             `bson:"fullName" json:"fullName"`
	Email              string             `bson:"email" json:"email"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	JobTitle           string             `bson:"jobTitle" json:"jobTitle"`
	OrganizationName   string             `bson:"organizationName" json:"organizationName"`
	IndustryType       IndustryType       `bson:"industryType" json:"industryType"`
	OrganizationSize   OrganizationSize   `bson:"organizationSize" json:"organizationSize"`
	Country            string             `bson:"country" json:"country"`
	InterestedProducts []string           `bson:"interestedProducts" json:"interestedProducts"`
	PreferredDate      *time.Time         `bson:"preferredDate,omitempty" json:"preferredDate,omitempty"`
	PreferredTime      PreferredTime      `bson:"preferredTime,omitempty" json:"preferredTime,omitempty"`
	Comments           string             `bson:"comments,omitempty" json:"comments,omitempty"`
	SubmittedAt        time.Time          `bson:"submittedAt" json:"submittedAt"`
	Status             RequestStatus      `bson:"status" json:"status"`
	IPAddress          string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent          string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DemoRequestSummary is the compact admin view of a request.
type DemoRequestSummary struct {
	ID           primitive.ObjectID `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Organization string             `json:"organization"`
	Products     string             `json:"products"`
	Status       RequestStatus      `json:"status"`
	SubmittedAt  string             `json:"submittedAt"`
}

// Summary returns the compact admin view of the request.
func (r *DemoRequest) Summary() DemoRequestSummary {
	return DemoRequestSummary{
		ID:           r.ID,
		Name:         r.FullName,
		Email:        r.Email,
		Organization: r.OrganizationName,
		Products:     strings.Join(r.InterestedProducts, ", "),
		Status:       r.Status,
		SubmittedAt:  r.SubmittedAt.Format("January 2, 2006"),
	}
}

// SubmitDemoRequestInput is the client-supplied body of a submission.
// Validation tags mirror the form rules; see utils.ValidateDemoRequest.
type SubmitDemoRequestInput struct {
	FullName           string   `json:"fullName" validate:"required,min=2"`
	Email              string   `json:"email" validate:"required,demoemail"`
	Phone              string   `json:"phone" validate:"omitempty,phonenumber"`
	JobTitle           string   `json:"jobTitle" validate:"required"`
	OrganizationName   string   `json:"organizationName" validate:"required"`
	IndustryType       string   `json:"industryType" validate:"required,oneof=pharmaceutical biotechnology clinical academic chemical food environmental other"`
	OrganizationSize   string   `json:"organizationSize" validate:"required,oneof=1-10 11-50 51-200 201-500 500+"`
	Country            string   `json:"country" validate:"required"`
	InterestedProducts []string `json:"interestedProducts" validate:"required,min=1"`
	PreferredDate      string   `json:"preferredDate" validate:"omitempty,demodate,notpast"`
	PreferredTime      string   `json:"preferredTime" validate:"omitempty,oneof=morning afternoon evening"`
	Comments           string   `json:"comments" validate:"omitempty,max=500"`
	SubmittedAt        string   `json:"submittedAt"`
}

// Normalize trims the free-text fields and lowercases the email, matching
// what the form does before submitting. Enum and date fields are left as-is.
func (in *SubmitDemoRequestInput) Normalize() {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.JobTitle = strings.TrimSpace(in.JobTitle)
	in.OrganizationName = strings.TrimSpace(in.OrganizationName)
	in.Country = strings.TrimSpace(in.Country)
	in.Comments = strings.TrimSpace(in.Comments)
}

// PreferredDateValue parses the optional preferred date. Returns nil when
// the field was left empty.
func (in *SubmitDemoRequestInput) PreferredDateValue() *time.Time {
	if in.PreferredDate == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", in.PreferredDate); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, in.PreferredDate); err == nil {
		return &t
	}
	return nil
}

// StatusUpdateInput is the body of a status update.
type StatusUpdateInput struct {
	Status string `json:"status"`
}
