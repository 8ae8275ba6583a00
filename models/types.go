package models

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// SubmissionReceipt is the data block returned for an accepted submission.
type SubmissionReceipt struct {
	ID          string `json:"id"`
	SubmittedAt string `json:"submittedAt"`
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
