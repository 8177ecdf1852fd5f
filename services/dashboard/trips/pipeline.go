package trips

// Dashboard is everything the presentation layer needs for one render.
type Dashboard struct {
	Selection Selection   `json:"selection"`
	Summary   Summary     `json:"summary"`
	Hourly    []HourCount `json:"hourly"`
	Weekday   []DayCount  `json:"weekday"`
	Geo       Geo         `json:"geo"`
	Warnings  []Warning   `json:"warnings"`
}

// Load ingests an upload and derives the trip table. When no file was
// supplied the returned status is StatusWaiting and the table is empty.
func Load(u *Upload) (Status, Table, error) {
	in, err := Ingest(u)
	if err != nil {
		return StatusReady, Table{}, err
	}
	if in.Status == StatusWaiting {
		return StatusWaiting, Table{}, nil
	}

	table, err := Derive(in.Raw, in.Source)
	if err != nil {
		return StatusReady, Table{}, err
	}
	return StatusReady, table, nil
}

// Compute filters the table and builds every aggregate from scratch.
func Compute(t Table, sel Selection) Dashboard {
	view := Filter(t, sel)

	d := Dashboard{
		Selection: sel,
		Summary:   Summarize(view),
		Hourly:    HourlyCounts(view),
		Weekday:   WeekdayCounts(view),
		Geo:       GeoPoints(view, MaxGeoPoints),
		Warnings:  []Warning{},
	}
	if view.Len() == 0 {
		d.Warnings = append(d.Warnings, WarningEmptyResult)
	}
	return d
}
