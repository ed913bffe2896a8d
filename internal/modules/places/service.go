package places

import (
	"context"
	"fmt"
	"strings"

	"placesweb/internal/domain"
)

type Options struct {
	Limit       int
	Images      []string
	DetailImage string
}

type Service struct {
	api  API
	opts Options
}

func NewService(api API, opts Options) *Service {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return &Service{api: api, opts: opts}
}

// List fetches all places visible to the token holder.
func (s *Service) List(ctx context.Context, token string) ([]domain.Place, error) {
	resp, err := s.api.ListPlaces(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch places: %w", err)
	}
	if !resp.OK() {
		return nil, &StatusError{Op: "fetch places", StatusCode: resp.StatusCode, StatusText: resp.StatusText()}
	}

	var places []domain.Place
	if err := resp.DecodeJSON(&places); err != nil {
		return nil, fmt.Errorf("fetch places: %w", err)
	}
	return places, nil
}

// ListPage fetches the places once and prepares the cards, the country
// options and the visibility for the selected country.
func (s *Service) ListPage(ctx context.Context, token, country string) (*ListView, error) {
	if country == "" {
		country = AllCountries
	}
	view := &ListView{Countries: []string{AllCountries}, Selected: country}

	places, err := s.List(ctx, token)
	if err != nil {
		return view, err
	}

	view.Cards = DisplayPlaces(places, s.opts.Limit, s.opts.Images)
	view.Countries = PopulateCountryFilter(view.Countries, places)
	FilterPlacesByCountry(view.Cards, country)
	return view, nil
}

func (s *Service) Detail(ctx context.Context, token, placeID string) (*DetailView, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil, ErrInvalidRequest
	}

	resp, err := s.api.GetPlace(ctx, token, placeID)
	if err != nil {
		return nil, fmt.Errorf("fetch place %s: %w", placeID, err)
	}
	if !resp.OK() {
		return nil, &StatusError{Op: "fetch place " + placeID, StatusCode: resp.StatusCode, StatusText: resp.StatusText()}
	}

	var place domain.Place
	if err := resp.DecodeJSON(&place); err != nil {
		return nil, fmt.Errorf("fetch place %s: %w", placeID, err)
	}
	return DisplayPlaceDetails(place, s.opts.DetailImage), nil
}
