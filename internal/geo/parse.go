package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidFormatError reports coordinate text that could not be parsed.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid coordinate format: %q", e.Input)
}

// OutOfBoundsError reports a parsed coordinate outside the supported region.
type OutOfBoundsError struct {
	Longitude float64
	Latitude  float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinates (%.4f, %.4f) outside supported region (longitude %.1f-%.1f, latitude %.1f-%.1f)",
		e.Longitude, e.Latitude, MinLongitude, MaxLongitude, MinLatitude, MaxLatitude)
}

// ParsePoint parses one line of coordinate text. Accepted layouts:
//
//	114.1578,22.2842,Central
//	114.1578 22.2842 Central
//	114.1578,22.2842
//
// The label defaults to DefaultLabel when omitted. Labels containing
// spaces are joined back together.
func ParsePoint(input string) (Point, error) {
	trimmed := strings.TrimSpace(input)

	var parts []string
	if strings.Contains(trimmed, ",") {
		for _, p := range strings.Split(trimmed, ",") {
			parts = append(parts, strings.TrimSpace(p))
		}
	} else {
		parts = strings.Fields(trimmed)
	}

	if len(parts) < 2 {
		return Point{}, &InvalidFormatError{Input: input}
	}

	longitude, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, &InvalidFormatError{Input: input}
	}
	latitude, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, &InvalidFormatError{Input: input}
	}

	if !WithinRegion(longitude, latitude) {
		return Point{}, &OutOfBoundsError{Longitude: longitude, Latitude: latitude}
	}

	label := DefaultLabel
	if len(parts) > 2 {
		label = strings.TrimSpace(strings.Join(parts[2:], " "))
	}

	return Point{Longitude: longitude, Latitude: latitude, Label: label}, nil
}
