package review

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Submit posts the review. 200, 201 and 204 count as success; the rating is
// sent as selected, including 0.
func (s *Service) Submit(ctx context.Context, token, placeID string, req SubmitReviewRequest) error {
	if strings.TrimSpace(placeID) == "" {
		return ErrInvalidRequest
	}
	if token == "" {
		return ErrUnauthorized
	}

	resp, err := s.api.SubmitReview(ctx, token, placeID, req.Review, req.Rating)
	if err != nil {
		return fmt.Errorf("submit review for place %s: %w", placeID, err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	default:
		return &StatusError{StatusCode: resp.StatusCode, StatusText: resp.StatusText()}
	}
}
