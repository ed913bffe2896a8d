package auth

import (
	"context"
	"fmt"
	"strings"

	"placesweb/internal/domain"
	"placesweb/internal/pkg/validator"
)

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Login exchanges credentials for the API access token.
func (s *Service) Login(ctx context.Context, form LoginForm) (string, error) {
	if errs := validator.Validate(form); errs != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, errs)
	}

	resp, err := s.api.Login(ctx, strings.TrimSpace(form.Email), form.Password)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", &RejectedError{StatusCode: resp.StatusCode, StatusText: resp.StatusText()}
	}

	var out domain.LoginResponse
	if err := resp.DecodeJSON(&out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return "", ErrMissingToken
	}
	return out.AccessToken, nil
}
