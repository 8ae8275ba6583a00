package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() Payload {
	return Payload{
		FullName:           "Jo",
		Email:              "a@b.co",
		JobTitle:           "QA",
		OrganizationName:   "Acme",
		IndustryType:       "academic",
		OrganizationSize:   "1-10",
		Country:            "US",
		InterestedProducts: []string{"LIMS"},
		SubmittedAt:        "2026-08-28T00:00:00Z",
	}
}

func TestClientSubmitSuccess(t *testing.T) {
	var received Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/demo/request", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Demo request submitted successfully",
			"data": map[string]string{
				"id":          "65a1b2c3d4e5f6a7b8c9d0e1",
				"submittedAt": "2026-08-28T10:00:00Z",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	receipt, err := client.Submit(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "65a1b2c3d4e5f6a7b8c9d0e1", receipt.ID)
	assert.Equal(t, "2026-08-28T10:00:00Z", receipt.SubmittedAt)
	assert.Equal(t, "a@b.co", received.Email)
	assert.Equal(t, []string{"LIMS"}, received.InterestedProducts)
}

func TestClientSubmitServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Validation failed",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	receipt, err := client.Submit(context.Background(), samplePayload())
	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.Equal(t, "Validation failed", err.Error(), "server message is surfaced verbatim")
}

func TestClientSubmitSuccessFalseBody(t *testing.T) {
	// A 200 with success:false still counts as failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Something went wrong",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Submit(context.Background(), samplePayload())
	require.Error(t, err)
	assert.Equal(t, "Something went wrong", err.Error())
}

func TestClientSubmitUnparsableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Submit(context.Background(), samplePayload())
	require.Error(t, err)
	assert.Equal(t, GenericErrorMessage, err.Error())
}

func TestClientSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	receipt, err := client.Submit(context.Background(), samplePayload())
	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.Equal(t, GenericErrorMessage, err.Error())

	var subErr *SubmissionError
	assert.ErrorAs(t, err, &subErr)
}
