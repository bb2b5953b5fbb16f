package report

import (
	"github.com/theoremus-urban-solutions/easyrider/dataset"
)

// OnDemandReport lists on-demand stop names that are also transfer stops.
type OnDemandReport struct {
	Conflicts []string `json:"conflicts" yaml:"conflicts"`
}

// OK reports whether no conflict was found.
func (r OnDemandReport) OK() bool { return len(r.Conflicts) == 0 }

// CheckOnDemandStops intersects the on-demand stop names with the names used by more
// than one on-demand or regular record.
func CheckOnDemandStops(ds *dataset.Dataset) OnDemandReport {
	pool := nameCounts(ds, func(stop dataset.StopRecord) bool {
		t := stop.Type()
		return t == dataset.StopTypeOnDemand || t == dataset.StopTypeRegular
	})

	conflicts := map[string]struct{}{}
	for _, stop := range ds.Stops() {
		if stop.Type() != dataset.StopTypeOnDemand {
			continue
		}
		if pool[stop.Name()] > 1 {
			conflicts[stop.Name()] = struct{}{}
		}
	}
	return OnDemandReport{Conflicts: sortedSet(conflicts)}
}
