package restaurant_test

import (
	"testing"

	"github.com/sschan39/hk-foodpanda-crawler/internal/geo"
	"github.com/sschan39/hk-foodpanda-crawler/internal/restaurant"
)

var central = geo.Point{Longitude: 114.1578, Latitude: 22.2842, Label: "Central 中環"}

func fullItem() map[string]any {
	return map[string]any{
		"code":                 "s1ab",
		"name":                 "Dim Sum Palace",
		"rating":               4.6,
		"review_number":        1520.0,
		"minimum_order_amount": 80.0,
		"longitude":            114.1581,
		"latitude":             22.2839,
		"distance":             312.5,
		"address":              "10 Queen's Road",
		"address_line2":        "2/F",
		"customer_phone":       "+852 2525 0000",
		"budget":               2.0,
		"is_active":            true,
		"chain": map[string]any{
			"name": "Palace Group",
		},
		"characteristics": map[string]any{
			"cuisines": []any{
				map[string]any{"name": "Cantonese"},
				map[string]any{"name": "Dim Sum"},
			},
		},
		"tags": []any{
			map[string]any{"text": "Popular"},
			map[string]any{"text": "Free delivery"},
		},
		"metadata": map[string]any{
			"available_in":          "ASAP",
			"is_delivery_available": true,
			"is_pickup_available":   false,
			"is_temporary_closed":   false,
		},
		"delivery_provider": "vendor_delivery",
		"hero_image":        "https://images.example/s1ab.jpg",
		"website":           "https://dimsumpalace.example",
		"vendor_legal_information": map[string]any{
			"legal_name": "Dim Sum Palace Limited",
		},
	}
}

func TestNormalize_FullItem(t *testing.T) {
	r, ok := restaurant.Normalize(fullItem(), central)
	if !ok {
		t.Fatal("expected item to normalize")
	}

	if r.Code != "s1ab" || r.Name != "Dim Sum Palace" {
		t.Errorf("identity = (%q, %q)", r.Code, r.Name)
	}
	if r.Rating == nil || *r.Rating != 4.6 {
		t.Errorf("rating = %v, want 4.6", r.Rating)
	}
	if r.RatingCount == nil || *r.RatingCount != 1520 {
		t.Errorf("rating count = %v, want 1520", r.RatingCount)
	}
	if r.Address == nil || *r.Address != "10 Queen's Road, 2/F" {
		t.Errorf("address = %v, want joined address lines", r.Address)
	}
	if r.Phone == nil || *r.Phone != "+852 2525 0000" {
		t.Errorf("phone = %v", r.Phone)
	}
	if r.Cuisines != "Cantonese, Dim Sum" {
		t.Errorf("cuisines = %q", r.Cuisines)
	}
	if r.Tags != "Popular, Free delivery" {
		t.Errorf("tags = %q", r.Tags)
	}
	if r.BudgetRange == nil || *r.BudgetRange != 2 {
		t.Errorf("budget = %v, want 2", r.BudgetRange)
	}
	if r.ChainName == nil || *r.ChainName != "Palace Group" {
		t.Errorf("chain name = %v", r.ChainName)
	}
	if r.LegalName == nil || *r.LegalName != "Dim Sum Palace Limited" {
		t.Errorf("legal name = %v", r.LegalName)
	}
	if r.IsOpen == nil || !*r.IsOpen {
		t.Errorf("is open = %v, want true", r.IsOpen)
	}
	if r.IsDeliveryEnabled == nil || !*r.IsDeliveryEnabled {
		t.Errorf("delivery enabled = %v, want true", r.IsDeliveryEnabled)
	}
	if r.IsPickupEnabled == nil || *r.IsPickupEnabled {
		t.Errorf("pickup enabled = %v, want false", r.IsPickupEnabled)
	}
	if r.Area != "Central 中環" {
		t.Errorf("area = %q, want originating point label", r.Area)
	}
	if r.Distance == nil || *r.Distance != 312.5 {
		t.Errorf("distance = %v, want 312.5", r.Distance)
	}
	if r.DeliveryTime != nil || r.DeliveryFee != nil {
		t.Error("legacy display fields should be absent")
	}
}

func TestNormalize_MissingIdentityDropped(t *testing.T) {
	tests := []struct {
		name string
		item map[string]any
	}{
		{name: "no code", item: map[string]any{"name": "Nameless"}},
		{name: "no name", item: map[string]any{"code": "x9"}},
		{name: "blank code", item: map[string]any{"code": "  ", "name": "Spaces"}},
		{name: "code wrong type", item: map[string]any{"code": 12.0, "name": "Numeric"}},
		{name: "empty item", item: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := restaurant.Normalize(tt.item, central); ok {
				t.Error("expected item without identity to be dropped")
			}
		})
	}
}

func TestNormalize_MinimalItem(t *testing.T) {
	r, ok := restaurant.Normalize(map[string]any{"code": "m1", "name": "Minimal"}, central)
	if !ok {
		t.Fatal("expected item to normalize")
	}

	if r.Rating != nil || r.RatingCount != nil || r.MinimumOrder != nil ||
		r.Address != nil || r.Phone != nil || r.BudgetRange != nil ||
		r.ChainName != nil || r.Longitude != nil || r.Latitude != nil ||
		r.Distance != nil || r.LegalName != nil || r.AvailableIn != nil ||
		r.DeliveryProvider != nil || r.HeroImage != nil || r.Website != nil {
		t.Error("optional attributes should be absent when the item omits them")
	}
	if r.Cuisines != "" || r.Tags != "" {
		t.Errorf("cuisines/tags = %q/%q, want empty", r.Cuisines, r.Tags)
	}

	// Platform defaults when metadata is missing entirely.
	if r.IsDeliveryEnabled == nil || !*r.IsDeliveryEnabled {
		t.Errorf("delivery enabled = %v, want default true", r.IsDeliveryEnabled)
	}
	if r.IsPickupEnabled == nil || !*r.IsPickupEnabled {
		t.Errorf("pickup enabled = %v, want default true", r.IsPickupEnabled)
	}
	if r.IsOpen == nil || !*r.IsOpen {
		t.Errorf("is open = %v, want default true", r.IsOpen)
	}
}

func TestNormalize_ZeroRatingIsPresent(t *testing.T) {
	r, ok := restaurant.Normalize(map[string]any{"code": "z1", "name": "Unloved", "rating": 0.0}, central)
	if !ok {
		t.Fatal("expected item to normalize")
	}
	if r.Rating == nil {
		t.Fatal("rating 0.0 must be a present value, not absent")
	}
	if *r.Rating != 0.0 {
		t.Errorf("rating = %v, want 0.0", *r.Rating)
	}
}

func TestNormalize_MalformedSubfields(t *testing.T) {
	item := map[string]any{
		"code":            "w1",
		"name":            "Weird Payload",
		"rating":          "4.5",                          // string, not number
		"review_number":   true,                           // bool, not number
		"chain":           "Palace Group",                 // string, not object
		"characteristics": []any{"cuisines"},              // list, not object
		"cuisines":        map[string]any{"name": "Thai"}, // object, not list
		"tags":            []any{"Popular", 3.0},          // bare values, not objects
		"metadata":        42.0,                           // number, not object
	}

	r, ok := restaurant.Normalize(item, central)
	if !ok {
		t.Fatal("expected item with valid identity to normalize")
	}
	if r.Rating != nil {
		t.Errorf("rating = %v, want absent for wrong-typed value", r.Rating)
	}
	if r.RatingCount != nil {
		t.Errorf("rating count = %v, want absent", r.RatingCount)
	}
	if r.ChainName != nil {
		t.Errorf("chain name = %v, want absent", r.ChainName)
	}
	if r.Cuisines != "" {
		t.Errorf("cuisines = %q, want empty", r.Cuisines)
	}
	if r.Tags != "" {
		t.Errorf("tags = %q, want empty", r.Tags)
	}
}

func TestNormalize_CuisineFallback(t *testing.T) {
	item := map[string]any{
		"code": "f1",
		"name": "Fallback",
		"cuisines": []any{
			map[string]any{"name": "Thai"},
			map[string]any{"name": ""},
			map[string]any{"name": "Vietnamese"},
		},
	}

	r, ok := restaurant.Normalize(item, central)
	if !ok {
		t.Fatal("expected item to normalize")
	}
	if r.Cuisines != "Thai, Vietnamese" {
		t.Errorf("cuisines = %q, want top-level fallback with blanks skipped", r.Cuisines)
	}
}

func TestNormalize_TemporarilyClosed(t *testing.T) {
	item := map[string]any{
		"code":      "c1",
		"name":      "Closed For Now",
		"is_active": true,
		"metadata": map[string]any{
			"is_temporary_closed": true,
		},
	}

	r, ok := restaurant.Normalize(item, central)
	if !ok {
		t.Fatal("expected item to normalize")
	}
	if r.IsOpen == nil || *r.IsOpen {
		t.Errorf("is open = %v, want false for temporarily closed vendor", r.IsOpen)
	}
}

func TestNormalize_ResultCoordinatesMayLeaveRegion(t *testing.T) {
	item := map[string]any{
		"code":      "o1",
		"name":      "Over The Border",
		"longitude": 113.2,
		"latitude":  23.1,
	}

	r, ok := restaurant.Normalize(item, central)
	if !ok {
		t.Fatal("expected item to normalize")
	}
	if r.Longitude == nil || *r.Longitude != 113.2 {
		t.Errorf("longitude = %v, want 113.2 kept as-is", r.Longitude)
	}
	if r.Latitude == nil || *r.Latitude != 23.1 {
		t.Errorf("latitude = %v, want 23.1 kept as-is", r.Latitude)
	}
}
