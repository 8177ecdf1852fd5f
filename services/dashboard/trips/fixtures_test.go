package trips_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/trips"
)

const tripHeader = "ride_id,started_at,ended_at,member_casual,start_lat,start_lng"

// scenarioCSV has 8 member trips on Monday 2024-01-01 at 08:xx lasting 10
// minutes and 2 casual trips on Saturday 2024-01-06 at 14:xx lasting 30.
func scenarioCSV() string {
	var b strings.Builder
	b.WriteString(tripHeader + "\n")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "M%d,2024-01-01 08:%02d:00,2024-01-01 08:%02d:00,member,41.%d,-87.6\n", i, i, i+10, i)
	}
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&b, "C%d,2024-01-06 14:%02d:00,2024-01-06 14:%02d:00,casual,,\n", i, i, i+30)
	}
	return b.String()
}

func loadCSV(t *testing.T, body string) trips.Table {
	t.Helper()
	status, table, err := trips.Load(&trips.Upload{Name: "trips.csv", Body: strings.NewReader(body)})
	require.NoError(t, err)
	require.Equal(t, trips.StatusReady, status)
	return table
}
