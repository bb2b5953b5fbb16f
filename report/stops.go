package report

import (
	"github.com/theoremus-urban-solutions/easyrider/dataset"
)

// StopClassification holds the sorted, de-duplicated stop names of each category.
type StopClassification struct {
	Start    []string `json:"start" yaml:"start"`
	Transfer []string `json:"transfer" yaml:"transfer"`
	Finish   []string `json:"finish" yaml:"finish"`
}

// ClassifyStops collects start and finish stop names by stop_type, and transfer stop
// names as names used by more than one record anywhere in the dataset.
func ClassifyStops(ds *dataset.Dataset) StopClassification {
	counts := nameCounts(ds, nil)
	start := map[string]struct{}{}
	finish := map[string]struct{}{}
	transfer := map[string]struct{}{}

	for _, stop := range ds.Stops() {
		name := stop.Name()
		if counts[name] > 1 {
			transfer[name] = struct{}{}
		}
		switch stop.Type() {
		case dataset.StopTypeStart:
			start[name] = struct{}{}
		case dataset.StopTypeFinish:
			finish[name] = struct{}{}
		}
	}
	return StopClassification{
		Start:    sortedSet(start),
		Transfer: sortedSet(transfer),
		Finish:   sortedSet(finish),
	}
}
