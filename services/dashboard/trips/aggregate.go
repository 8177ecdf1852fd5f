package trips

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MaxGeoPoints caps the start locations handed to the map.
const MaxGeoPoints = 1000

// Summary holds the headline metrics. AvgDurationMinutes is nil when the
// view is empty; it is never reported as zero.
type Summary struct {
	TotalRides         int      `json:"total_rides"`
	AvgDurationMinutes *float64 `json:"avg_duration_minutes"`
}

// HourCount is one bin of the hourly histogram.
type HourCount struct {
	Hour  int `json:"hour"`
	Rides int `json:"rides"`
}

// DayCount is one bar of the weekday chart.
type DayCount struct {
	Day   string `json:"day"`
	Rides int    `json:"rides"`
}

// Point is a trip start location.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geo holds map points. Available is false when the coordinate columns are
// absent from the table.
type Geo struct {
	Available bool    `json:"available"`
	Points    []Point `json:"points"`
}

// Summarize counts the view and averages ride duration in minutes.
func Summarize(v View) Summary {
	s := Summary{TotalRides: v.Len()}
	if s.TotalRides == 0 {
		return s
	}
	seconds := v.frame.Col(ColDuration).Float()
	avg := stat.Mean(seconds, nil) / 60
	s.AvgDurationMinutes = &avg
	return s
}

// HourlyCounts always returns 24 bins, hours without trips included.
func HourlyCounts(v View) []HourCount {
	var counts [24]int
	if v.Len() > 0 {
		col := v.frame.Col(ColHour)
		for i := 0; i < col.Len(); i++ {
			h, err := col.Elem(i).Int()
			if err != nil || h < 0 || h > 23 {
				continue
			}
			counts[h]++
		}
	}

	out := make([]HourCount, len(counts))
	for h, n := range counts {
		out[h] = HourCount{Hour: h, Rides: n}
	}
	return out
}

// WeekdayCounts always returns 7 bars, Monday first.
func WeekdayCounts(v View) []DayCount {
	var counts [7]int
	if v.Len() > 0 {
		col := v.frame.Col(ColDayOfWeek)
		for i := 0; i < col.Len(); i++ {
			if idx, ok := weekdayIndex(col.Elem(i).String()); ok {
				counts[idx]++
			}
		}
	}

	out := make([]DayCount, len(counts))
	for i, n := range counts {
		out[i] = DayCount{Day: Weekdays[i], Rides: n}
	}
	return out
}

// GeoPoints returns up to limit start locations in table order, skipping
// rows where either coordinate is missing or not numeric.
func GeoPoints(v View, limit int) Geo {
	if len(missingColumns(v.frame, ColStartLat, ColStartLng)) > 0 {
		return Geo{Available: false, Points: []Point{}}
	}

	n := v.Len()
	if limit < 0 {
		limit = 0
	}
	if limit > n {
		limit = n
	}
	points := make([]Point, 0, limit)
	if n == 0 {
		return Geo{Available: true, Points: points}
	}

	lats := v.frame.Col(ColStartLat)
	lngs := v.frame.Col(ColStartLng)
	for i := 0; i < n && len(points) < limit; i++ {
		lat, lng := lats.Elem(i).Float(), lngs.Elem(i).Float()
		if !finite(lat) || !finite(lng) {
			continue
		}
		points = append(points, Point{Lat: lat, Lng: lng})
	}
	return Geo{Available: true, Points: points}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
