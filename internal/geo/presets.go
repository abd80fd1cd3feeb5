package geo

import "strings"

// Region groups preset points for display.
type Region struct {
	Name   string
	Points []Point
}

// Presets returns the fixed table of predefined Hong Kong search
// points, in display order. Callers get a fresh slice and may not
// mutate shared state through it.
func Presets() []Point {
	points := make([]Point, 0, 29)
	for _, r := range PresetRegions() {
		points = append(points, r.Points...)
	}
	return points
}

// PresetRegions returns the preset table grouped by region.
func PresetRegions() []Region {
	return []Region{
		{
			Name: "Hong Kong Island",
			Points: []Point{
				{114.1578, 22.2842, "Central 中環"},
				{114.1417, 22.2569, "Sheung Wan 上環"},
				{114.1849, 22.2818, "Admiralty 金鐘"},
				{114.1722, 22.2783, "Wan Chai 灣仔"},
				{114.1693, 22.2783, "Causeway Bay 銅鑼灣"},
				{114.1889, 22.2667, "Happy Valley 跑馬地"},
				{114.2264, 22.2444, "Quarry Bay 鰂魚涌"},
				{114.2397, 22.2597, "Taikoo 太古"},
				{114.2583, 22.2781, "Shau Kei Wan 筲箕灣"},
				{114.2181, 22.2472, "North Point 北角"},
				{114.1689, 22.2406, "Aberdeen 香港仔"},
			},
		},
		{
			Name: "Kowloon",
			Points: []Point{
				{114.2107, 22.3223, "Tsim Sha Tsui 尖沙咀"},
				{114.1819, 22.3028, "Jordan 佐敦"},
				{114.2281, 22.3193, "Yau Ma Tei 油麻地"},
				{114.2029, 22.3193, "Mong Kok 旺角"},
				{114.2111, 22.3389, "Prince Edward 太子"},
				{114.1944, 22.3278, "Sham Shui Po 深水埗"},
				{114.1917, 22.3361, "Cheung Sha Wan 長沙灣"},
				{114.2583, 22.3306, "Kowloon City 九龍城"},
				{114.2236, 22.2778, "Hung Hom 紅磡"},
				{114.2919, 22.3361, "Kwun Tong 觀塘"},
			},
		},
		{
			Name: "New Territories",
			Points: []Point{
				{114.2642, 22.3736, "Sha Tin 沙田"},
				{114.3556, 22.4175, "Ma On Shan 馬鞍山"},
				{114.2119, 22.4467, "Tai Po 大埔"},
				{114.1569, 22.4964, "Fanling 粉嶺"},
				{114.1244, 22.4969, "Sheung Shui 上水"},
				{114.1194, 22.3669, "Tsuen Wan 荃灣"},
				{114.0306, 22.3969, "Tuen Mun 屯門"},
				{114.0742, 22.4456, "Yuen Long 元朗"},
			},
		},
	}
}

// MatchPreset finds the first preset whose label contains the query,
// in table order. Matching is case-insensitive.
func MatchPreset(query string) (Point, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Point{}, false
	}
	for _, p := range Presets() {
		if strings.Contains(strings.ToLower(p.Label), q) {
			return p, true
		}
	}
	return Point{}, false
}

// SelectPresets resolves a selection expression against the preset
// table: "all" selects every preset, otherwise the expression is a
// comma-separated list of names matched fuzzily. Selected presets come
// back in table order regardless of input order, each at most once;
// unmatched names are returned separately.
func SelectPresets(expr string) (selected []Point, unmatched []string) {
	if strings.EqualFold(strings.TrimSpace(expr), "all") {
		return Presets(), nil
	}

	matched := make(map[string]bool)
	for _, part := range strings.Split(expr, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if p, ok := MatchPreset(name); ok {
			matched[p.Label] = true
		} else {
			unmatched = append(unmatched, name)
		}
	}

	for _, p := range Presets() {
		if matched[p.Label] {
			selected = append(selected, p)
		}
	}
	return selected, unmatched
}
