package trips

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the Divvy export and the derived features.
const (
	ColStartedAt = "started_at"
	ColEndedAt   = "ended_at"
	ColRider     = "member_casual"
	ColStartLat  = "start_lat"
	ColStartLng  = "start_lng"

	ColHour      = "hour"
	ColDayOfWeek = "day_of_week"
	ColMonth     = "month"
	ColYear      = "year"
	ColDuration  = "duration_s"
)

// RequiredColumns must be present for the pipeline to run at all.
var RequiredColumns = []string{ColStartedAt, ColEndedAt, ColRider}

// Table is the processed trip table. It is not modified after Derive returns.
type Table struct {
	Source  string
	Dropped int

	frame dataframe.DataFrame
}

// Len returns the number of trips.
func (t Table) Len() int {
	return t.frame.Nrow()
}

// Columns returns the column names, derived columns included.
func (t Table) Columns() []string {
	return t.frame.Names()
}

// HasColumns reports whether every named column exists.
func (t Table) HasColumns(names ...string) bool {
	return len(missingColumns(t.frame, names...)) == 0
}

type timestamp struct {
	t  time.Time
	ok bool
}

// Derive parses the timestamp columns, drops rows where either failed to
// parse and appends hour, day_of_week, month, year and duration_s.
func Derive(raw dataframe.DataFrame, source string) (Table, error) {
	if err := raw.Error(); err != nil {
		return Table{}, &MalformedInputError{Source: source, Err: err}
	}
	if missing := missingColumns(raw, RequiredColumns...); len(missing) > 0 {
		return Table{}, &MissingColumnError{Columns: missing}
	}

	starts := parseColumn(raw.Col(ColStartedAt))
	ends := parseColumn(raw.Col(ColEndedAt))
	keep := validRows(starts, ends)

	n := len(keep)
	var (
		startVals = make([]string, n)
		endVals   = make([]string, n)
		hours     = make([]int, n)
		days      = make([]string, n)
		months    = make([]int, n)
		years     = make([]int, n)
		durations = make([]float64, n)
	)
	for i, row := range keep {
		start, end := starts[row].t, ends[row].t
		startVals[i] = start.Format(TimestampLayout)
		endVals[i] = end.Format(TimestampLayout)
		hours[i] = start.Hour()
		days[i] = start.Weekday().String()
		months[i] = int(start.Month())
		years[i] = start.Year()
		durations[i] = end.Sub(start).Seconds()
	}

	frame := raw.Subset(keep)
	for _, s := range []series.Series{
		series.New(startVals, series.String, ColStartedAt),
		series.New(endVals, series.String, ColEndedAt),
		series.New(hours, series.Int, ColHour),
		series.New(days, series.String, ColDayOfWeek),
		series.New(months, series.Int, ColMonth),
		series.New(years, series.Int, ColYear),
		series.New(durations, series.Float, ColDuration),
	} {
		frame = frame.Mutate(s)
	}
	if err := frame.Error(); err != nil {
		return Table{}, fmt.Errorf("derive features: %w", err)
	}

	return Table{Source: source, Dropped: raw.Nrow() - n, frame: frame}, nil
}

func parseColumn(col series.Series) []timestamp {
	out := make([]timestamp, col.Len())
	for i := range out {
		el := col.Elem(i)
		if el.IsNA() {
			continue
		}
		t, ok := ParseTimestamp(el.String())
		out[i] = timestamp{t: t, ok: ok}
	}
	return out
}

// validRows returns the indexes of rows whose start and end both parsed.
func validRows(starts, ends []timestamp) []int {
	keep := make([]int, 0, len(starts))
	for i := range starts {
		if starts[i].ok && ends[i].ok {
			keep = append(keep, i)
		}
	}
	return keep
}

func missingColumns(df dataframe.DataFrame, names ...string) []string {
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	var missing []string
	for _, name := range names {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
