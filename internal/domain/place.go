package domain

// Place is a rentable listing as returned by the places API.
type Place struct {
	ID                string   `json:"id"`
	Description       string   `json:"description"`
	PricePerNight     Number   `json:"price_per_night"`
	CityName          string   `json:"city_name"`
	CountryName       string   `json:"country_name"`
	HostName          string   `json:"host_name"`
	NumberOfRooms     Number   `json:"number_of_rooms"`
	NumberOfBathrooms Number   `json:"number_of_bathrooms"`
	MaxGuests         Number   `json:"max_guests"`
	Amenities         []string `json:"amenities"`
	Reviews           []Review `json:"reviews"`
}
