package trips

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// View is the subset of a Table matching a Selection, in table order.
type View struct {
	Selection Selection

	frame dataframe.DataFrame
}

// Len returns the number of matching trips.
func (v View) Len() int {
	return v.frame.Nrow()
}

// Filter keeps the trips whose rider type equals sel.Rider and, unless set
// to All, whose weekday and month match sel.Day and sel.Month. The
// predicates are conjunctive, so their order does not change the result.
func Filter(t Table, sel Selection) View {
	if sel.Rider == "" || t.Len() == 0 {
		return View{Selection: sel, frame: t.frame.Subset([]int{})}
	}

	df := t.frame.Filter(dataframe.F{Colname: ColRider, Comparator: series.Eq, Comparando: sel.Rider})

	if sel.Day != All {
		df = df.Filter(dataframe.F{Colname: ColDayOfWeek, Comparator: series.Eq, Comparando: sel.Day})
	}

	if sel.Month != All {
		n, ok := monthNumber(sel.Month)
		if !ok {
			return View{Selection: sel, frame: t.frame.Subset([]int{})}
		}
		df = df.Filter(dataframe.F{Colname: ColMonth, Comparator: series.Eq, Comparando: n})
	}

	return View{Selection: sel, frame: df}
}
