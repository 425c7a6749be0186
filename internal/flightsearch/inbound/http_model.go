package inbound

type SearchResponse struct {
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`
	Metadata       MetadataResponse       `json:"metadata"`
	Stats          StatsResponse          `json:"stats"`
	Facets         []FacetResponse        `json:"facets"`
	Histogram      []HistogramBucket      `json:"histogram"`
	Pagination     PaginationResponse     `json:"pagination"`
	ViewMode       string                 `json:"view_mode"`
	Flights        []OfferResponse        `json:"flights"`
}

type SearchCriteriaResponse struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
	Adults        int     `json:"adults"`
	TravelClass   string  `json:"travel_class,omitempty"`
}

type MetadataResponse struct {
	TotalResults     int   `json:"total_results"`
	VisibleResults   int   `json:"visible_results"`
	SearchTimeMs     int64 `json:"search_time_ms"`
	CacheHit         bool  `json:"cache_hit"`
	HasActiveFilters bool  `json:"has_active_filters"`
}

type StatsResponse struct {
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	AveragePrice float64 `json:"average_price"`
}

type FacetResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type HistogramBucket struct {
	Lower float64 `json:"lower"`
	Count int     `json:"count"`
	Label string  `json:"label"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type OfferResponse struct {
	ID            string              `json:"id"`
	Airlines      []string            `json:"airlines"`
	Price         PriceResponse       `json:"price"`
	Itineraries   []ItineraryResponse `json:"itineraries"`
	Stops         int                 `json:"stops"`
	BookableSeats int                 `json:"bookable_seats"`
	LowestPrice   bool                `json:"lowest_price"`
}

type PriceResponse struct {
	Total     string `json:"total"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

type ItineraryResponse struct {
	Duration        string            `json:"duration"`
	DurationMinutes int               `json:"duration_minutes"`
	Formatted       string            `json:"formatted"`
	Stops           int               `json:"stops"`
	Segments        []SegmentResponse `json:"segments"`
}

type SegmentResponse struct {
	From              string `json:"from"`
	To                string `json:"to"`
	DepartureAt       string `json:"departure_at"`
	ArrivalAt         string `json:"arrival_at"`
	DepartureTerminal string `json:"departure_terminal,omitempty"`
	ArrivalTerminal   string `json:"arrival_terminal,omitempty"`
	Carrier           string `json:"carrier"`
	Number            string `json:"number"`
	Stops             int    `json:"stops"`
}

type AirportResponse struct {
	IATACode    string `json:"iata_code"`
	Name        string `json:"name"`
	CityName    string `json:"city_name"`
	CountryCode string `json:"country_code"`
}

type SeatMapResponse struct {
	OfferID   string               `json:"offer_id"`
	Available bool                 `json:"available"`
	Message   string               `json:"message,omitempty"`
	Segments  []SegmentSeatMapItem `json:"segments"`
	Selection *SelectionResponse   `json:"selection,omitempty"`
}

type SegmentSeatMapItem struct {
	SegmentID string            `json:"segment_id"`
	Sections  []SectionResponse `json:"sections"`
}

type SectionResponse struct {
	Deck        string         `json:"deck"`
	Cabin       string         `json:"cabin"`
	DisplayName string         `json:"display_name"`
	MinRow      int            `json:"min_row"`
	MaxRow      int            `json:"max_row"`
	Rows        []int          `json:"rows"`
	Columns     []string       `json:"columns"`
	Seats       []SeatResponse `json:"seats"`
}

type SeatResponse struct {
	Number          string   `json:"number"`
	Row             int      `json:"row"`
	Column          string   `json:"column"`
	Status          string   `json:"status"`
	Characteristics []string `json:"characteristics"`
	Window          bool     `json:"window"`
	Aisle           bool     `json:"aisle"`
	Middle          bool     `json:"middle"`
	ExitRow         bool     `json:"exit_row"`
	ExtraLegroom    bool     `json:"extra_legroom"`
	Premium         bool     `json:"premium"`
	Selected        bool     `json:"selected"`
	Price           string   `json:"price,omitempty"`
}

type SelectionResponse struct {
	SegmentID       string   `json:"segment_id"`
	Number          string   `json:"number"`
	Cabin           string   `json:"cabin"`
	Characteristics []string `json:"characteristics"`
	Price           string   `json:"price,omitempty"`
}

type ConfirmResponse struct {
	BookingReference string `json:"booking_reference"`
	OfferID          string `json:"offer_id"`
	SelectedSeat     string `json:"selected_seat,omitempty"`
	Status           string `json:"status"`
}
