package report

import (
	"sort"
	"strconv"

	"github.com/theoremus-urban-solutions/easyrider/dataset"
)

// lineIndex groups records by line, keeping payload order inside each line.
type lineIndex struct {
	order []string                        // first-seen order of line keys
	stops map[string][]dataset.StopRecord // line -> records
}

func indexLines(ds *dataset.Dataset) *lineIndex {
	idx := &lineIndex{stops: map[string][]dataset.StopRecord{}}
	for _, stop := range ds.Stops() {
		line := stop.Line()
		if line == "" {
			continue
		}
		if _, ok := idx.stops[line]; !ok {
			idx.order = append(idx.order, line)
		}
		idx.stops[line] = append(idx.stops[line], stop)
	}
	return idx
}

// nameCounts counts records per stop name, optionally restricted by keep.
func nameCounts(ds *dataset.Dataset, keep func(dataset.StopRecord) bool) map[string]int {
	counts := map[string]int{}
	for _, stop := range ds.Stops() {
		if keep != nil && !keep(stop) {
			continue
		}
		counts[stop.Name()]++
	}
	return counts
}

// sortedSet returns the distinct values sorted lexicographically, never nil.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// sortLines orders line keys numerically, non-numeric keys after numeric ones.
func sortLines(lines []string) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, aerr := strconv.Atoi(lines[i])
		b, berr := strconv.Atoi(lines[j])
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		}
		return lines[i] < lines[j]
	})
}
