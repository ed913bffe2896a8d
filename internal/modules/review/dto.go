package review

type SubmitReviewRequest struct {
	Review string `form:"review" json:"review"`
	Rating int    `form:"rating" json:"rating"`
}
