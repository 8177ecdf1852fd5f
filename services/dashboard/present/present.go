// Package present turns computed dashboards into display strings and chart
// series for the HTML page.
package present

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/trips"
)

// NoValue is shown in place of an average over zero rides.
const NoValue = "n/a"

// Series is one chart's x/y data.
type Series struct {
	Title string   `json:"title"`
	X     []string `json:"x"`
	Y     []int    `json:"y"`
}

// MapPoints holds coordinates in the column layout Plotly expects.
type MapPoints struct {
	Available bool      `json:"available"`
	Lat       []float64 `json:"lat"`
	Lng       []float64 `json:"lng"`
}

// Panel is the rendered form of a Dashboard.
type Panel struct {
	TotalRides  string    `json:"total_rides"`
	AvgDuration string    `json:"avg_duration"`
	HourlyTitle string    `json:"hourly_title"`
	WeeklyTitle string    `json:"weekly_title"`
	Hourly      Series    `json:"hourly"`
	Weekday     Series    `json:"weekday"`
	Map         MapPoints `json:"map"`
	Empty       bool      `json:"empty"`
}

// Build formats d for display.
func Build(d trips.Dashboard) Panel {
	p := Panel{
		TotalRides:  FormatCount(d.Summary.TotalRides),
		AvgDuration: FormatMinutes(d.Summary.AvgDurationMinutes),
		HourlyTitle: fmt.Sprintf("Rides by Hour (%s Riders)", RiderLabel(d.Selection.Rider)),
		WeeklyTitle: fmt.Sprintf("Weekly Usage Pattern - %s Riders", RiderLabel(d.Selection.Rider)),
	}

	p.Hourly = Series{Title: p.HourlyTitle, X: make([]string, 0, len(d.Hourly)), Y: make([]int, 0, len(d.Hourly))}
	for _, h := range d.Hourly {
		p.Hourly.X = append(p.Hourly.X, fmt.Sprint(h.Hour))
		p.Hourly.Y = append(p.Hourly.Y, h.Rides)
	}

	p.Weekday = Series{Title: p.WeeklyTitle, X: make([]string, 0, len(d.Weekday)), Y: make([]int, 0, len(d.Weekday))}
	for _, w := range d.Weekday {
		p.Weekday.X = append(p.Weekday.X, w.Day)
		p.Weekday.Y = append(p.Weekday.Y, w.Rides)
	}

	p.Map = MapPoints{
		Available: d.Geo.Available,
		Lat:       make([]float64, 0, len(d.Geo.Points)),
		Lng:       make([]float64, 0, len(d.Geo.Points)),
	}
	for _, pt := range d.Geo.Points {
		p.Map.Lat = append(p.Map.Lat, pt.Lat)
		p.Map.Lng = append(p.Map.Lng, pt.Lng)
	}

	for _, w := range d.Warnings {
		if w == trips.WarningEmptyResult {
			p.Empty = true
		}
	}
	return p
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatMinutes renders an average duration, or NoValue when there is none.
func FormatMinutes(m *float64) string {
	if m == nil {
		return NoValue
	}
	return fmt.Sprintf("%.2f mins", *m)
}

// RiderLabel title-cases a rider type for chart titles. A Caser is stateful,
// so each call gets its own.
func RiderLabel(rider string) string {
	return cases.Title(language.English).String(rider)
}
