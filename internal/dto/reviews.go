package dto

// CreateReviewRequest captures a public review submission.
type CreateReviewRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Rating  *int   `json:"rating"`
	Message string `json:"message"`
}

// UpdateReviewStatusRequest is the admin moderation payload.
type UpdateReviewStatusRequest struct {
	Status string `json:"status"`
}
