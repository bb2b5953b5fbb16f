package report

import (
	"github.com/theoremus-urban-solutions/easyrider/dataset"
)

// LineCount is the number of stop records of one line.
type LineCount struct {
	Line  string `json:"bus_id" yaml:"bus_id"`
	Stops int    `json:"stops" yaml:"stops"`
}

// StopsPerLine counts records per bus_id in first-seen order.
// Records without a bus_id are not counted.
func StopsPerLine(ds *dataset.Dataset) []LineCount {
	idx := indexLines(ds)
	out := make([]LineCount, 0, len(idx.order))
	for _, line := range idx.order {
		out = append(out, LineCount{Line: line, Stops: len(idx.stops[line])})
	}
	return out
}

// DistinctLines returns the set of bus_id values in ascending order.
func DistinctLines(ds *dataset.Dataset) []string {
	idx := indexLines(ds)
	lines := append([]string(nil), idx.order...)
	sortLines(lines)
	return lines
}

// HasSingleStartAndFinish reports whether the line has exactly one start and exactly one
// finish record.
func HasSingleStartAndFinish(ds *dataset.Dataset, line string) bool {
	starts, finishes := 0, 0
	for _, stop := range ds.Stops() {
		if stop.Line() != line {
			continue
		}
		switch stop.Type() {
		case dataset.StopTypeStart:
			starts++
		case dataset.StopTypeFinish:
			finishes++
		}
	}
	return starts == 1 && finishes == 1
}

// StartFinishReport lists the first line, in ascending order, that does not have exactly
// one start and one finish stop.
type StartFinishReport struct {
	MissingLine string `json:"missing_line,omitempty" yaml:"missing_line,omitempty"`
}

// OK reports whether every line has a single start and finish.
func (r StartFinishReport) OK() bool { return r.MissingLine == "" }

// CheckStartFinish stops at the first line without a single start and finish.
func CheckStartFinish(ds *dataset.Dataset) StartFinishReport {
	for _, line := range DistinctLines(ds) {
		if !HasSingleStartAndFinish(ds, line) {
			return StartFinishReport{MissingLine: line}
		}
	}
	return StartFinishReport{}
}
