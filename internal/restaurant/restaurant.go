package restaurant

// Restaurant is the canonical record for one listed vendor. Code and
// Name are the required identity pair; every other attribute is
// optional, with nil meaning the listing did not carry the value.
// A rating of 0.0 is a real rating, not a missing one.
type Restaurant struct {
	Code string `json:"code"`
	Name string `json:"name"`

	Rating      *float64 `json:"rating,omitempty"`
	RatingCount *int     `json:"rating_count,omitempty"`

	// Retained for older export consumers; the listing feed no longer
	// carries either value.
	DeliveryTime *string `json:"delivery_time,omitempty"`
	DeliveryFee  *string `json:"delivery_fee,omitempty"`

	MinimumOrder *float64 `json:"minimum_order,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	IsOpen       *bool    `json:"is_open,omitempty"`
	Cuisines     string   `json:"cuisines"`
	BudgetRange  *int     `json:"budget_range,omitempty"`
	ChainName    *string  `json:"chain_name,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`

	// Area and Distance attribute the record to the search point that
	// discovered it. Fixed at creation, never reassigned.
	Area     string   `json:"area"`
	Distance *float64 `json:"distance,omitempty"`

	IsDeliveryEnabled *bool   `json:"is_delivery_enabled,omitempty"`
	IsPickupEnabled   *bool   `json:"is_pickup_enabled,omitempty"`
	DeliveryProvider  *string `json:"delivery_provider,omitempty"`
	HeroImage         *string `json:"hero_image,omitempty"`
	Website           *string `json:"website,omitempty"`
	LegalName         *string `json:"legal_name,omitempty"`
	AvailableIn       *string `json:"available_in,omitempty"`
	Tags              string  `json:"tags"`
}

// Accumulator collects records over one run. It is owned by the run
// invocation and passed by reference into the fetch engine; nothing
// outlives the run.
type Accumulator struct {
	records []Restaurant
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Append adds a record.
func (a *Accumulator) Append(r Restaurant) {
	a.records = append(a.records, r)
}

// Len returns the number of accumulated records.
func (a *Accumulator) Len() int {
	return len(a.records)
}

// Records returns the accumulated records in append order.
func (a *Accumulator) Records() []Restaurant {
	return a.records
}
