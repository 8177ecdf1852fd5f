package trips

import "time"

// All disables the day or month filter.
const All = "All"

// Weekdays is the canonical Monday-first weekday order used for chart axes.
var Weekdays = [7]string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// Months lists month names, January first.
var Months = [12]string{
	time.January.String(),
	time.February.String(),
	time.March.String(),
	time.April.String(),
	time.May.String(),
	time.June.String(),
	time.July.String(),
	time.August.String(),
	time.September.String(),
	time.October.String(),
	time.November.String(),
	time.December.String(),
}

// weekdayIndex maps a weekday name to its position in Weekdays.
func weekdayIndex(name string) (int, bool) {
	for i, d := range Weekdays {
		if d == name {
			return i, true
		}
	}
	return 0, false
}

// monthNumber maps a month name to 1..12.
func monthNumber(name string) (int, bool) {
	for i, m := range Months {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}
