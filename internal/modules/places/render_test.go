package places

import (
	"fmt"
	"testing"

	"placesweb/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var images = []string{"images/place1.jpg", "images/place2.jpg", "images/place3.jpg", "images/place4.jpg", "images/place5.jpg", "images/place6.jpg"}

func makePlaces(n int) []domain.Place {
	out := make([]domain.Place, n)
	for i := range out {
		out[i] = domain.Place{
			ID:            fmt.Sprintf("p-%d", i+1),
			Description:   fmt.Sprintf("Place %d", i+1),
			PricePerNight: domain.Num(float64(50 + i)),
			CityName:      "Paris",
			CountryName:   "FR",
		}
	}
	return out
}

func TestDisplayPlaces_LimitOrderAndImages(t *testing.T) {
	cards := DisplayPlaces(makePlaces(20), 15, images)

	require.Len(t, cards, 15)
	for i, card := range cards {
		assert.Equal(t, fmt.Sprintf("p-%d", i+1), card.ID)
		assert.Equal(t, images[i%len(images)], card.Image)
		assert.Equal(t, "place.html?id="+card.ID, card.DetailsURL)
		assert.False(t, card.Hidden)
	}
	assert.Equal(t, "images/place1.jpg", cards[6].Image)
}

func TestDisplayPlaces_FewerThanLimit(t *testing.T) {
	cards := DisplayPlaces(makePlaces(3), 15, images)
	assert.Len(t, cards, 3)

	assert.Empty(t, DisplayPlaces(nil, 15, images))
}

func TestDisplayPlaces_IsReentrant(t *testing.T) {
	places := makePlaces(4)
	assert.Equal(t, DisplayPlaces(places, 15, images), DisplayPlaces(places, 15, images))
}

func TestDisplayPlaces_Fallbacks(t *testing.T) {
	cards := DisplayPlaces([]domain.Place{{ID: "x"}}, 15, images)

	require.Len(t, cards, 1)
	assert.Equal(t, "Unnamed Place", cards[0].Title)
	assert.Equal(t, "N/A", cards[0].Price)
	assert.Equal(t, "Unknown City, Unknown Country", cards[0].Location)
}

func TestDisplayPlaces_PriceFormatting(t *testing.T) {
	cards := DisplayPlaces([]domain.Place{{ID: "a", PricePerNight: domain.Num(120)}, {ID: "b", PricePerNight: domain.Num(99.5)}}, 15, images)
	assert.Equal(t, "120", cards[0].Price)
	assert.Equal(t, "99.5", cards[1].Price)
}

func TestPopulateCountryFilter_FirstSeenOrder(t *testing.T) {
	places := []domain.Place{{CountryName: "FR"}, {CountryName: "FR"}, {CountryName: "DE"}}

	options := PopulateCountryFilter([]string{"All"}, places)

	assert.Equal(t, []string{"All", "FR", "DE"}, options)
}

func TestPopulateCountryFilter_DoesNotMutateInput(t *testing.T) {
	existing := make([]string, 1, 4)
	existing[0] = "All"

	_ = PopulateCountryFilter(existing, []domain.Place{{CountryName: "US"}})

	assert.Equal(t, []string{"All"}, existing)
}

func TestFilterPlacesByCountry(t *testing.T) {
	cards := []Card{
		{ID: "1", Location: "Paris, FR"},
		{ID: "2", Location: "Berlin, DE"},
		{ID: "3", Location: "Lyon, FR"},
	}

	FilterPlacesByCountry(cards, "FR")
	assert.False(t, cards[0].Hidden)
	assert.True(t, cards[1].Hidden)
	assert.False(t, cards[2].Hidden)

	FilterPlacesByCountry(cards, "All")
	for _, c := range cards {
		assert.False(t, c.Hidden)
	}
}

func TestFilterPlacesByCountry_SubstringMatch(t *testing.T) {
	cards := []Card{
		{Location: "Mumbai, India"},
		{Location: "Indianapolis, Indiana"},
		{Location: "Oslo, Norway"},
	}

	FilterPlacesByCountry(cards, "India")

	assert.False(t, cards[0].Hidden)
	assert.False(t, cards[1].Hidden)
	assert.True(t, cards[2].Hidden)
}

func TestDisplayPlaceDetails(t *testing.T) {
	p := domain.Place{
		ID:                "p-1",
		Description:       "Loft",
		PricePerNight:     domain.Num(80),
		CityName:          "Paris",
		CountryName:       "FR",
		HostName:          "Alice",
		NumberOfRooms:     domain.Num(2),
		NumberOfBathrooms: domain.Num(1),
		MaxGuests:         domain.Num(4),
		Amenities:         []string{"WiFi", "Pool"},
		Reviews: []domain.Review{
			{UserName: "Bob", Comment: "Lovely", Rating: domain.Num(3)},
			{Rating: domain.Num(7)},
		},
	}

	v := DisplayPlaceDetails(p, "images/place7.jpg")

	assert.Equal(t, "Loft", v.Title)
	assert.Equal(t, "images/place7.jpg", v.Image)
	assert.Equal(t, "Paris, FR", v.Location)
	assert.Equal(t, "80", v.Price)
	assert.Equal(t, "Alice", v.Host)
	assert.Equal(t, "2", v.Rooms)
	assert.Equal(t, "1", v.Bathrooms)
	assert.Equal(t, "4", v.MaxGuests)
	assert.Equal(t, "WiFi, Pool", v.Amenities)
	require.Len(t, v.Reviews, 2)
	assert.Equal(t, ReviewView{Author: "Bob", Comment: "Lovely", Stars: "★★★☆☆"}, v.Reviews[0])
	assert.Equal(t, ReviewView{Author: "Anonymous", Comment: "No comment", Stars: "★★★★★"}, v.Reviews[1])
}

func TestDisplayPlaceDetails_AmenitiesEmptyVsMissing(t *testing.T) {
	missing := DisplayPlaceDetails(domain.Place{}, "")
	empty := DisplayPlaceDetails(domain.Place{Amenities: []string{}}, "")

	assert.Equal(t, "N/A", missing.Amenities)
	assert.Equal(t, "N/A", empty.Amenities)
}

func TestDisplayPlaceDetails_Fallbacks(t *testing.T) {
	v := DisplayPlaceDetails(domain.Place{}, "")

	assert.Equal(t, "Unnamed Place", v.Title)
	assert.Equal(t, "Unknown City, Unknown Country", v.Location)
	assert.Equal(t, "N/A", v.Price)
	assert.Equal(t, "N/A", v.Host)
	assert.Equal(t, "N/A", v.Rooms)
	assert.Equal(t, "N/A", v.Bathrooms)
	assert.Equal(t, "N/A", v.MaxGuests)
	assert.Empty(t, v.Reviews)
}
