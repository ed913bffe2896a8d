package domain

// Review is a read-only review attached to a place.
type Review struct {
	UserName string `json:"user_name"`
	Comment  string `json:"comment"`
	Rating   Number `json:"rating"`
}

// ReviewSubmission is the body posted to /places/{id}/reviews.
type ReviewSubmission struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}
