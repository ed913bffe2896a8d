package places

import (
	"net/url"
	"strconv"
	"strings"

	"placesweb/internal/domain"
	"placesweb/internal/modules/review"
)

const (
	AllCountries   = "All"
	DefaultLimit   = 15
	notAvailable   = "N/A"
	unnamedPlace   = "Unnamed Place"
	unknownCity    = "Unknown City"
	unknownCountry = "Unknown Country"
)

// DisplayPlaces builds at most limit cards in input order. Card i uses
// images[i mod len(images)].
func DisplayPlaces(places []domain.Place, limit int, images []string) []Card {
	if limit < 0 {
		limit = 0
	}
	if len(places) > limit {
		places = places[:limit]
	}

	cards := make([]Card, 0, len(places))
	for i, p := range places {
		var image string
		if len(images) > 0 {
			image = images[i%len(images)]
		}
		cards = append(cards, Card{
			ID:         p.ID,
			Image:      image,
			Title:      orDefault(p.Description, unnamedPlace),
			Price:      formatNumber(p.PricePerNight),
			Location:   location(p),
			DetailsURL: "place.html?id=" + url.QueryEscape(p.ID),
		})
	}
	return cards
}

// PopulateCountryFilter appends each distinct country once, in first-seen
// order, after the existing options.
func PopulateCountryFilter(options []string, places []domain.Place) []string {
	out := append([]string(nil), options...)
	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		if _, ok := seen[p.CountryName]; ok {
			continue
		}
		seen[p.CountryName] = struct{}{}
		out = append(out, p.CountryName)
	}
	return out
}

// FilterPlacesByCountry toggles visibility of already built cards. Matching is
// a substring test on the location text.
func FilterPlacesByCountry(cards []Card, country string) {
	for i := range cards {
		cards[i].Hidden = !(country == AllCountries || strings.Contains(cards[i].Location, country))
	}
}

// DisplayPlaceDetails renders every attribute with its fallback text.
func DisplayPlaceDetails(p domain.Place, image string) *DetailView {
	v := &DetailView{
		ID:        p.ID,
		Title:     orDefault(p.Description, unnamedPlace),
		Image:     image,
		Location:  location(p),
		Price:     formatNumber(p.PricePerNight),
		Host:      orDefault(p.HostName, notAvailable),
		Rooms:     formatNumber(p.NumberOfRooms),
		Bathrooms: formatNumber(p.NumberOfBathrooms),
		MaxGuests: formatNumber(p.MaxGuests),
		Amenities: orDefault(strings.Join(p.Amenities, ", "), notAvailable),
	}
	for _, r := range p.Reviews {
		v.Reviews = append(v.Reviews, ReviewView{
			Author:  orDefault(r.UserName, "Anonymous"),
			Comment: orDefault(r.Comment, "No comment"),
			Stars:   review.ConvertRatingToStars(r.Rating.Int()),
		})
	}
	return v
}

func location(p domain.Place) string {
	return orDefault(p.CityName, unknownCity) + ", " + orDefault(p.CountryName, unknownCountry)
}

// formatNumber renders zero, missing and mistyped values as N/A.
func formatNumber(n domain.Number) string {
	if !n.Valid || n.Value == 0 {
		return notAvailable
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
