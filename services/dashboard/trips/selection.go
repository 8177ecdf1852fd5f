package trips

// Selection is the active rider/day/month filter. Bound from query or form values.
type Selection struct {
	Rider string `form:"rider" json:"rider"`
	Day   string `form:"day" json:"day"`
	Month string `form:"month" json:"month"`
}

// Options are the values the selection controls may offer.
type Options struct {
	RiderTypes []string `json:"rider_types"`
	Days       []string `json:"days"`
	Months     []string `json:"months"`
}

// OptionsFor lists distinct non-missing rider types in order of first
// appearance, plus the canonical day and month lists prefixed with All.
func OptionsFor(t Table) Options {
	riders := make([]string, 0, 2)
	if t.HasColumns(ColRider) {
		seen := make(map[string]bool)
		col := t.frame.Col(ColRider)
		for i := 0; i < col.Len(); i++ {
			el := col.Elem(i)
			if el.IsNA() {
				continue
			}
			v := el.String()
			if !seen[v] {
				seen[v] = true
				riders = append(riders, v)
			}
		}
	}

	days := append([]string{All}, Weekdays[:]...)
	months := append([]string{All}, Months[:]...)

	return Options{RiderTypes: riders, Days: days, Months: months}
}

// Default is the selection a fresh upload starts with.
func (o Options) Default() Selection {
	sel := Selection{Day: All, Month: All}
	if len(o.RiderTypes) > 0 {
		sel.Rider = o.RiderTypes[0]
	}
	return sel
}

// Resolve fills empty fields with defaults and checks every value against
// the enumerations. With no rider types available the rider is left empty,
// which yields an empty view downstream.
func (o Options) Resolve(sel Selection) (Selection, error) {
	def := o.Default()
	if sel.Rider == "" {
		sel.Rider = def.Rider
	}
	if sel.Day == "" {
		sel.Day = All
	}
	if sel.Month == "" {
		sel.Month = All
	}

	if sel.Rider != "" && !contains(o.RiderTypes, sel.Rider) {
		return Selection{}, &InvalidSelectionError{Field: "rider", Value: sel.Rider}
	}
	if !contains(o.Days, sel.Day) {
		return Selection{}, &InvalidSelectionError{Field: "day", Value: sel.Day}
	}
	if !contains(o.Months, sel.Month) {
		return Selection{}, &InvalidSelectionError{Field: "month", Value: sel.Month}
	}
	return sel, nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
