package geo

// Hong Kong approximate boundaries. Search coordinates must fall inside
// this box; result coordinates returned by the listing service may not.
const (
	MinLongitude = 113.8
	MaxLongitude = 114.5
	MinLatitude  = 22.0
	MaxLatitude  = 22.6
)

// DefaultLabel is assigned to points entered without an area name.
const DefaultLabel = "Custom Location"

// Point is a named search coordinate. Points are created by the parser
// or the preset table and are not modified afterwards.
type Point struct {
	Longitude float64
	Latitude  float64
	Label     string
}

// WithinRegion reports whether the coordinate pair falls inside the
// supported bounding box. Boundary values are inclusive.
func WithinRegion(longitude, latitude float64) bool {
	return longitude >= MinLongitude && longitude <= MaxLongitude &&
		latitude >= MinLatitude && latitude <= MaxLatitude
}
