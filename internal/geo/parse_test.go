package geo_test

import (
	"errors"
	"testing"

	"github.com/sschan39/hk-foodpanda-crawler/internal/geo"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      geo.Point
		wantErr   bool
		formatErr bool
		boundsErr bool
	}{
		{
			name:  "comma separated with label",
			input: "114.1578,22.2842,Central District",
			want:  geo.Point{Longitude: 114.1578, Latitude: 22.2842, Label: "Central District"},
		},
		{
			name:  "space separated with label",
			input: "114.1578 22.2842 Wan Chai",
			want:  geo.Point{Longitude: 114.1578, Latitude: 22.2842, Label: "Wan Chai"},
		},
		{
			name:  "bare coordinates use default label",
			input: "114.1578,22.2842",
			want:  geo.Point{Longitude: 114.1578, Latitude: 22.2842, Label: geo.DefaultLabel},
		},
		{
			name:  "comma separated with spaces",
			input: "114.1578, 22.2842, Central Business District",
			want:  geo.Point{Longitude: 114.1578, Latitude: 22.2842, Label: "Central Business District"},
		},
		{
			name:  "multi word label space separated",
			input: "114.2029 22.3193 Mong Kok Market",
			want:  geo.Point{Longitude: 114.2029, Latitude: 22.3193, Label: "Mong Kok Market"},
		},
		{
			name:  "surrounding whitespace",
			input: "  114.1578,22.2842,Central  ",
			want:  geo.Point{Longitude: 114.1578, Latitude: 22.2842, Label: "Central"},
		},
		{
			name:      "single token",
			input:     "114.1578",
			wantErr:   true,
			formatErr: true,
		},
		{
			name:      "empty input",
			input:     "",
			wantErr:   true,
			formatErr: true,
		},
		{
			name:      "non-numeric longitude",
			input:     "abc,22.2842",
			wantErr:   true,
			formatErr: true,
		},
		{
			name:      "non-numeric latitude",
			input:     "114.1578,north",
			wantErr:   true,
			formatErr: true,
		},
		{
			name:      "outside region west",
			input:     "113.5,22.28,Macau",
			wantErr:   true,
			boundsErr: true,
		},
		{
			name:      "outside region north",
			input:     "114.15,23.2",
			wantErr:   true,
			boundsErr: true,
		},
		{
			name:      "lat lon swapped rejected as out of bounds",
			input:     "22.2842,114.1578",
			wantErr:   true,
			boundsErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := geo.ParsePoint(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePoint(%q) expected error, got %+v", tt.input, got)
				}
				var formatErr *geo.InvalidFormatError
				if tt.formatErr && !errors.As(err, &formatErr) {
					t.Errorf("expected InvalidFormatError, got %T: %v", err, err)
				}
				var boundsErr *geo.OutOfBoundsError
				if tt.boundsErr && !errors.As(err, &boundsErr) {
					t.Errorf("expected OutOfBoundsError, got %T: %v", err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParsePoint(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePoint(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
