package form

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// GenericErrorMessage is shown when the server supplies no message of its
// own. It keeps a contact channel in front of the user.
const GenericErrorMessage = "An error occurred. Please try again or contact us directly at sales@thelabax.com"

// Payload is the submitted form data, serialized as the request body.
type Payload struct {
	FullName           string   `json:"fullName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	JobTitle           string   `json:"jobTitle"`
	OrganizationName   string   `json:"organizationName"`
	IndustryType       string   `json:"industryType"`
	OrganizationSize   string   `json:"organizationSize"`
	Country            string   `json:"country"`
	InterestedProducts []string `json:"interestedProducts"`
	PreferredDate      string   `json:"preferredDate"`
	PreferredTime      string   `json:"preferredTime"`
	Comments           string   `json:"comments"`
	SubmittedAt        string   `json:"submittedAt"`
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID          string
	SubmittedAt string
}

// SubmissionError is a rejected or failed submission. Its message is safe
// to show to the user.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// submitResponse is the server's envelope.
type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID          string `json:"id"`
		SubmittedAt string `json:"submittedAt"`
	} `json:"data"`
}

// Client posts submissions to the demo-request API.
//
// The request carries no timeout: a slow network leaves the submission in
// flight until it settles, which the form accepts because the submit
// control stays disabled for the duration.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a submission client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		endpoint:   baseURL + "/api/demo/request",
		httpClient: &http.Client{},
	}
}

// Submit sends the payload and interprets the result. Any non-success
// status, a success:false body, or a transport failure comes back as a
// *SubmissionError carrying the server's message when one is present.
func (c *Client) Submit(ctx context.Context, payload Payload) (*Receipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SubmissionError{Message: GenericErrorMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &SubmissionError{Message: GenericErrorMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network-level failure: no response to interpret.
		return nil, &SubmissionError{Message: GenericErrorMessage}
	}
	defer resp.Body.Close()

	var parsed submitResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (decodeErr == nil && !parsed.Success) {
		message := GenericErrorMessage
		if decodeErr == nil && parsed.Message != "" {
			message = parsed.Message
		}
		return nil, &SubmissionError{Message: message}
	}
	if decodeErr != nil {
		return nil, &SubmissionError{Message: GenericErrorMessage}
	}

	receipt := &Receipt{
		ID:          parsed.Data.ID,
		SubmittedAt: parsed.Data.SubmittedAt,
	}
	if receipt.SubmittedAt == "" {
		receipt.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return receipt, nil
}
