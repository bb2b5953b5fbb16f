package report

import (
	"time"

	"github.com/theoremus-urban-solutions/easyrider/dataset"
	"github.com/theoremus-urban-solutions/easyrider/utils"
)

// ArrivalViolation is the first record of a line whose arrival time is not later than the
// one before it.
type ArrivalViolation struct {
	Line string `json:"bus_id" yaml:"bus_id"`
	Stop string `json:"stop_name" yaml:"stop_name"`
	Time string `json:"a_time" yaml:"a_time"`
	// After is the running arrival time the record failed to exceed
	After string `json:"after" yaml:"after"`
}

// ArrivalReport holds at most one violation per line, lines in ascending order.
type ArrivalReport struct {
	Violations []ArrivalViolation `json:"violations" yaml:"violations"`
}

// OK reports whether every line has strictly increasing arrival times.
func (r ArrivalReport) OK() bool { return len(r.Violations) == 0 }

// CheckArrivalTimes walks the records of each line in payload order. The first record
// sets the running time, every later one must be strictly later. A line stops being
// checked at its first violation. Records whose a_time is not a valid clock time are
// skipped.
func CheckArrivalTimes(ds *dataset.Dataset) ArrivalReport {
	idx := indexLines(ds)
	rep := ArrivalReport{Violations: []ArrivalViolation{}}

	lines := append([]string(nil), idx.order...)
	sortLines(lines)
	for _, line := range lines {
		var last time.Duration
		started := false
		for _, stop := range idx.stops[line] {
			at, err := utils.ParseClock(stop.ATime.String())
			if err != nil {
				continue
			}
			if started && at <= last {
				rep.Violations = append(rep.Violations, ArrivalViolation{
					Line:  line,
					Stop:  stop.Name(),
					Time:  stop.ATime.String(),
					After: utils.FormatClock(last),
				})
				break
			}
			last = at
			started = true
		}
	}
	return rep
}
