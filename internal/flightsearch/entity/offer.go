package entity

// FlightOffer is one priced itinerary option from the aggregator. Offers are
// immutable for the lifetime of a search response.
type FlightOffer struct {
	ID                     string      `json:"id"`
	Itineraries            []Itinerary `json:"itineraries"`
	Price                  Price       `json:"price"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// Itinerary is one direction of travel: outbound, or the return leg of a
// round trip.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is one marketed flight between two airports.
type Segment struct {
	ID            string   `json:"id"`
	Departure     Endpoint `json:"departure"`
	Arrival       Endpoint `json:"arrival"`
	CarrierCode   string   `json:"carrierCode"`
	Number        string   `json:"number"`
	NumberOfStops int      `json:"numberOfStops"`
}

// Endpoint is an airport touchpoint. At is the aggregator's local timestamp
// without a zone offset ("2026-03-01T07:35:00").
type Endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// Valid reports whether the offer can be displayed. An offer with zero
// itineraries is malformed and is excluded from every derived view.
func (o FlightOffer) Valid() bool {
	return len(o.Itineraries) > 0
}

// PrimaryAirline returns the first validating airline code, or "" when the
// offer carries none.
func (o FlightOffer) PrimaryAirline() string {
	if len(o.ValidatingAirlineCodes) == 0 {
		return ""
	}
	return o.ValidatingAirlineCodes[0]
}

// StopCount sums stops across all itineraries of the offer, matching the
// offer-wide semantics of price and duration.
func (o FlightOffer) StopCount() int {
	total := 0
	for _, itinerary := range o.Itineraries {
		total += itinerary.StopCount()
	}
	return total
}

// StopCount is the itinerary's own-stop total plus one connection per
// segment boundary.
func (i Itinerary) StopCount() int {
	if len(i.Segments) == 0 {
		return 0
	}
	count := len(i.Segments) - 1
	for _, segment := range i.Segments {
		count += segment.NumberOfStops
	}
	return count
}
