package entity

// Location is an airport hit from the reference-data lookup, used to power
// origin/destination autocomplete.
type Location struct {
	IATACode    string `json:"iataCode"`
	Name        string `json:"name"`
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
}
