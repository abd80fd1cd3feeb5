package restaurant

import (
	"strings"

	"github.com/sschan39/hk-foodpanda-crawler/internal/geo"
)

// Normalize maps one raw listing item onto a Restaurant attributed to
// the search point that produced it. Every optional field tolerates
// being absent or of an unexpected shape and normalizes to nil. Items
// without a usable code and name cannot be deduplicated or reported,
// so Normalize drops them: the second return is false.
func Normalize(item map[string]any, point geo.Point) (Restaurant, bool) {
	code := strings.TrimSpace(getString(item, "code"))
	name := strings.TrimSpace(getString(item, "name"))
	if code == "" || name == "" {
		return Restaurant{}, false
	}

	r := Restaurant{
		Code:         code,
		Name:         name,
		Rating:       getFloat(item, "rating"),
		RatingCount:  getInt(item, "review_number"),
		MinimumOrder: getFloat(item, "minimum_order_amount"),
		Longitude:    getFloat(item, "longitude"),
		Latitude:     getFloat(item, "latitude"),
		Distance:     getFloat(item, "distance"),
		BudgetRange:  getInt(item, "budget"),
		Area:         point.Label,
	}

	address := strings.TrimSpace(getString(item, "address"))
	if line2 := strings.TrimSpace(getString(item, "address_line2")); line2 != "" {
		if address != "" {
			address += ", " + line2
		} else {
			address = line2
		}
	}
	if address != "" {
		r.Address = &address
	}

	if phone := strings.TrimSpace(getString(item, "customer_phone")); phone != "" {
		r.Phone = &phone
	}

	if chain := getMap(item, "chain"); chain != nil {
		if chainName := strings.TrimSpace(getString(chain, "name")); chainName != "" {
			r.ChainName = &chainName
		}
	}

	// Cuisines live under characteristics; some payloads carry them at
	// the top level instead.
	var cuisines []string
	if characteristics := getMap(item, "characteristics"); characteristics != nil {
		cuisines = namedEntries(characteristics["cuisines"], "name")
	}
	if len(cuisines) == 0 {
		cuisines = namedEntries(item["cuisines"], "name")
	}
	r.Cuisines = strings.Join(cuisines, ", ")

	r.Tags = strings.Join(namedEntries(item["tags"], "text"), ", ")

	metadata := getMap(item, "metadata")
	if metadata != nil {
		if availableIn := strings.TrimSpace(getString(metadata, "available_in")); availableIn != "" {
			r.AvailableIn = &availableIn
		}
	}
	r.IsDeliveryEnabled = boolOrDefault(metadata, "is_delivery_available", true)
	r.IsPickupEnabled = boolOrDefault(metadata, "is_pickup_available", true)

	active := true
	if v := getBool(item, "is_active"); v != nil {
		active = *v
	}
	temporarilyClosed := false
	if v := getBool(metadata, "is_temporary_closed"); v != nil {
		temporarilyClosed = *v
	}
	isOpen := active && !temporarilyClosed
	r.IsOpen = &isOpen

	if provider := strings.TrimSpace(getString(item, "delivery_provider")); provider != "" {
		r.DeliveryProvider = &provider
	}
	if hero := strings.TrimSpace(getString(item, "hero_image")); hero != "" {
		r.HeroImage = &hero
	}
	if site := strings.TrimSpace(getString(item, "website")); site != "" {
		r.Website = &site
	}
	if legal := getMap(item, "vendor_legal_information"); legal != nil {
		if legalName := strings.TrimSpace(getString(legal, "legal_name")); legalName != "" {
			r.LegalName = &legalName
		}
	}

	return r, true
}

// namedEntries flattens a list of objects into the non-empty values of
// one string field, preserving order. Anything that is not a list of
// objects yields nil.
func namedEntries(v any, field string) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if s := strings.TrimSpace(getString(m, field)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func getFloat(m map[string]any, key string) *float64 {
	if m == nil {
		return nil
	}
	if f, ok := m[key].(float64); ok {
		return &f
	}
	return nil
}

func getInt(m map[string]any, key string) *int {
	// encoding/json decodes all numbers in an untyped document as
	// float64.
	if f := getFloat(m, key); f != nil {
		n := int(*f)
		return &n
	}
	return nil
}

func getBool(m map[string]any, key string) *bool {
	if m == nil {
		return nil
	}
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}

func boolOrDefault(m map[string]any, key string, def bool) *bool {
	if v := getBool(m, key); v != nil {
		return v
	}
	return &def
}
