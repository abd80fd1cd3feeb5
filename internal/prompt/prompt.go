// Package prompt drives the interactive selection of search points.
// Input and output are injected so the flow tests without a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sschan39/hk-foodpanda-crawler/internal/geo"
)

// ErrNoSelection is returned when the session ends without any points.
var ErrNoSelection = errors.New("no coordinate points selected")

// Session is one interactive point-selection dialogue.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewSession creates a Session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// SelectPoints runs the dialogue and returns the chosen points:
// preset selections first in table order, custom entries after in
// input order.
func (s *Session) SelectPoints() ([]geo.Point, error) {
	mode, err := s.selectMode()
	if err != nil {
		return nil, err
	}

	var points []geo.Point

	if mode == "1" || mode == "3" {
		presets, err := s.selectPresets()
		if err != nil {
			return nil, err
		}
		points = append(points, presets...)
	}

	if mode == "2" || mode == "3" {
		custom, err := s.readCustomPoints()
		if err != nil {
			return nil, err
		}
		points = append(points, custom...)
	}

	if len(points) == 0 {
		return nil, ErrNoSelection
	}

	fmt.Fprintf(s.out, "\nSelected %d search point(s):\n", len(points))
	for i, p := range points {
		fmt.Fprintf(s.out, "  %2d. %s (%.4f, %.4f)\n", i+1, p.Label, p.Longitude, p.Latitude)
	}

	return points, nil
}

func (s *Session) selectMode() (string, error) {
	fmt.Fprintln(s.out, "Select search coordinates:")
	fmt.Fprintln(s.out, "  1. Predefined locations")
	fmt.Fprintln(s.out, "  2. Custom coordinates")
	fmt.Fprintln(s.out, "  3. Mixed (predefined + custom)")

	for {
		fmt.Fprint(s.out, "Mode (1/2/3): ")
		line, ok := s.readLine()
		if !ok {
			return "", io.ErrUnexpectedEOF
		}
		mode := strings.TrimSpace(line)
		if mode == "1" || mode == "2" || mode == "3" {
			return mode, nil
		}
		fmt.Fprintln(s.out, "Please enter 1, 2, or 3.")
	}
}

func (s *Session) selectPresets() ([]geo.Point, error) {
	for _, region := range geo.PresetRegions() {
		fmt.Fprintf(s.out, "\n%s:\n", region.Name)
		for _, p := range region.Points {
			fmt.Fprintf(s.out, "  - %s (%.4f, %.4f)\n", p.Label, p.Longitude, p.Latitude)
		}
	}
	fmt.Fprintln(s.out, "\nEnter a location, a comma-separated list, or \"all\".")

	for {
		fmt.Fprint(s.out, "Locations: ")
		line, ok := s.readLine()
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}

		selected, unmatched := geo.SelectPresets(line)
		for _, name := range unmatched {
			fmt.Fprintf(s.out, "No predefined location matches %q.\n", name)
		}
		if len(selected) > 0 {
			return selected, nil
		}
		fmt.Fprintln(s.out, "No valid locations selected, please try again.")
	}
}

func (s *Session) readCustomPoints() ([]geo.Point, error) {
	fmt.Fprintln(s.out, "\nEnter custom coordinates, one per line (lon,lat[,label]).")
	fmt.Fprintf(s.out, "Supported range: longitude %.1f-%.1f, latitude %.1f-%.1f.\n",
		geo.MinLongitude, geo.MaxLongitude, geo.MinLatitude, geo.MaxLatitude)
	fmt.Fprintln(s.out, "Finish with an empty line.")

	var points []geo.Point
	for {
		line, ok := s.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return points, nil
		}

		p, err := geo.ParsePoint(line)
		if err != nil {
			fmt.Fprintf(s.out, "Rejected: %v\n", err)
			continue
		}
		points = append(points, p)
		fmt.Fprintf(s.out, "Added: %s (%.4f, %.4f)\n", p.Label, p.Longitude, p.Latitude)
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}
