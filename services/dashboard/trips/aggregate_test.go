package trips_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/trips"
)

func sumHours(counts []trips.HourCount) int {
	total := 0
	for _, c := range counts {
		total += c.Rides
	}
	return total
}

func sumDays(counts []trips.DayCount) int {
	total := 0
	for _, c := range counts {
		total += c.Rides
	}
	return total
}

func TestHourlyAndWeekdayDomains(t *testing.T) {
	table := loadCSV(t, scenarioCSV())

	for _, sel := range []trips.Selection{
		{Rider: "member", Day: trips.All, Month: trips.All},
		{Rider: "casual", Day: trips.All, Month: trips.All},
		{Rider: "member", Day: "Sunday", Month: trips.All},
	} {
		view := trips.Filter(table, sel)
		hourly := trips.HourlyCounts(view)
		weekday := trips.WeekdayCounts(view)

		require.Len(t, hourly, 24)
		require.Len(t, weekday, 7)
		assert.Equal(t, view.Len(), sumHours(hourly))
		assert.Equal(t, view.Len(), sumDays(weekday))
		for h, c := range hourly {
			assert.Equal(t, h, c.Hour)
		}
		for i, c := range weekday {
			assert.Equal(t, trips.Weekdays[i], c.Day)
		}
	}

	member := trips.Filter(table, trips.Selection{Rider: "member", Day: trips.All, Month: trips.All})
	assert.Equal(t, 8, trips.HourlyCounts(member)[8].Rides)
	assert.Equal(t, 8, trips.WeekdayCounts(member)[0].Rides)

	casual := trips.Filter(table, trips.Selection{Rider: "casual", Day: trips.All, Month: trips.All})
	assert.Equal(t, 2, trips.HourlyCounts(casual)[14].Rides)
	assert.Equal(t, trips.DayCount{Day: "Saturday", Rides: 2}, trips.WeekdayCounts(casual)[5])
}

func TestSummarize(t *testing.T) {
	body := tripHeader + "\n" +
		"A,2024-03-04 10:00:00,2024-03-04 10:06:00,member,,\n" +
		"B,2024-03-04 11:00:00,2024-03-04 11:18:00,member,,\n"
	view := trips.Filter(loadCSV(t, body), trips.Selection{Rider: "member", Day: trips.All, Month: trips.All})

	s := trips.Summarize(view)
	assert.Equal(t, 2, s.TotalRides)
	require.NotNil(t, s.AvgDurationMinutes)
	assert.InDelta(t, 12.0, *s.AvgDurationMinutes, 1e-9)
}

func TestGeoPointsCap(t *testing.T) {
	var b strings.Builder
	b.WriteString(tripHeader + "\n")
	for i := 0; i < 1500; i++ {
		lat, lng := fmt.Sprintf("41.%04d", i), "-87.6"
		if i%3 == 0 {
			lng = ""
		}
		fmt.Fprintf(&b, "R%d,2024-05-06 07:00:00,2024-05-06 07:20:00,member,%s,%s\n", i, lat, lng)
	}
	view := trips.Filter(loadCSV(t, b.String()), trips.Selection{Rider: "member", Day: trips.All, Month: trips.All})
	require.Equal(t, 1500, view.Len())

	geo := trips.GeoPoints(view, trips.MaxGeoPoints)
	assert.True(t, geo.Available)
	assert.Len(t, geo.Points, trips.MaxGeoPoints)
	// i=0 has no longitude, so the first point is i=1, in table order.
	assert.InDelta(t, 41.0001, geo.Points[0].Lat, 1e-9)
	assert.InDelta(t, 41.0002, geo.Points[1].Lat, 1e-9)

	small := trips.GeoPoints(view, 5)
	assert.Len(t, small.Points, 5)

	var none trips.Geo
	require.NotPanics(t, func() { none = trips.GeoPoints(view, -1) })
	assert.True(t, none.Available)
	assert.NotNil(t, none.Points)
	assert.Empty(t, none.Points)
}

func TestGeoPointsCountsOnlyCompleteCoordinates(t *testing.T) {
	body := tripHeader + "\n" +
		"A,2024-01-01 08:00:00,2024-01-01 08:10:00,member,41.9,-87.7\n" +
		"B,2024-01-01 08:00:00,2024-01-01 08:10:00,member,,-87.7\n" +
		"C,2024-01-01 08:00:00,2024-01-01 08:10:00,member,north,-87.7\n" +
		"D,2024-01-01 08:00:00,2024-01-01 08:10:00,member,41.8,-87.6\n"
	view := trips.Filter(loadCSV(t, body), trips.Selection{Rider: "member", Day: trips.All, Month: trips.All})

	geo := trips.GeoPoints(view, trips.MaxGeoPoints)
	assert.Equal(t, []trips.Point{{Lat: 41.9, Lng: -87.7}, {Lat: 41.8, Lng: -87.6}}, geo.Points)
}

func TestGeoUnavailableWithoutCoordinateColumns(t *testing.T) {
	body := "started_at,ended_at,member_casual\n" +
		"2024-01-01 08:00:00,2024-01-01 08:10:00,member\n" +
		"2024-01-01 09:00:00,2024-01-01 09:20:00,member\n"
	table := loadCSV(t, body)

	d := trips.Compute(table, trips.Selection{Rider: "member", Day: trips.All, Month: trips.All})
	assert.False(t, d.Geo.Available)
	assert.Empty(t, d.Geo.Points)
	assert.Equal(t, 2, d.Summary.TotalRides)
	require.NotNil(t, d.Summary.AvgDurationMinutes)
	assert.InDelta(t, 15.0, *d.Summary.AvgDurationMinutes, 1e-9)
	assert.Equal(t, 2, sumHours(d.Hourly))
	assert.Equal(t, 2, sumDays(d.Weekday))
}
