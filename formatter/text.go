package formatter

import (
	"fmt"
	"strings"
)

// BuildText renders the executed reports in execution order
func (rb *reportBuilder) BuildText(s *Summary) []byte {
	var b strings.Builder
	for _, name := range s.Order {
		switch name {
		case ReportValidation:
			writeValidationText(&b, s.Validation)
		case ReportLines:
			writeLinesText(&b, s)
		case ReportStops:
			writeStopsText(&b, s)
		case ReportArrival:
			writeArrivalText(&b, s)
		case ReportOnDemand:
			writeOnDemandText(&b, s)
		case ReportStartFinish:
			writeStartFinishText(&b, s)
		}
	}
	return []byte(b.String())
}

func writeValidationText(b *strings.Builder, v *ValidationSummary) {
	if v == nil {
		return
	}
	fmt.Fprintf(b, "Type and required field validation: %d errors\n", v.Total)
	for _, f := range v.Fields {
		fmt.Fprintf(b, "%s: %d\n", f.Field, f.Errors())
	}
}

func writeLinesText(b *strings.Builder, s *Summary) {
	b.WriteString("Line names and number of stops:\n")
	for _, lc := range s.Lines {
		fmt.Fprintf(b, "%s: %d\n", lc.Line, lc.Stops)
	}
}

func writeStopsText(b *strings.Builder, s *Summary) {
	if s.Stops == nil {
		return
	}
	fmt.Fprintf(b, "Start stops: %d %s\n", len(s.Stops.Start), quoteList(s.Stops.Start))
	fmt.Fprintf(b, "Transfer stops: %d %s\n", len(s.Stops.Transfer), quoteList(s.Stops.Transfer))
	fmt.Fprintf(b, "Finish stops: %d %s\n", len(s.Stops.Finish), quoteList(s.Stops.Finish))
}

func writeArrivalText(b *strings.Builder, s *Summary) {
	if s.Arrival == nil {
		return
	}
	b.WriteString("Arrival time test:\n")
	if s.Arrival.OK() {
		b.WriteString("OK\n")
		return
	}
	for _, v := range s.Arrival.Violations {
		fmt.Fprintf(b, "bus_id line %s: wrong time on station %s\n", v.Line, v.Stop)
	}
}

func writeOnDemandText(b *strings.Builder, s *Summary) {
	if s.OnDemand == nil {
		return
	}
	b.WriteString("On demand stops test:\n")
	if s.OnDemand.OK() {
		b.WriteString("Wrong stop type: OK\n")
		return
	}
	fmt.Fprintf(b, "Wrong stop type: %s\n", quoteList(s.OnDemand.Conflicts))
}

func writeStartFinishText(b *strings.Builder, s *Summary) {
	if s.StartFinish == nil {
		return
	}
	if s.StartFinish.OK() {
		b.WriteString("Start and finish test: OK\n")
		return
	}
	fmt.Fprintf(b, "There is no start or end stop for the line: %s.\n", s.StartFinish.MissingLine)
}

// quoteList renders names as ['A', 'B']
func quoteList(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = quote(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func quote(s string) string {
	q := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = `"`
	}
	r := strings.NewReplacer(`\`, `\\`, q, `\`+q, "\n", `\n`, "\t", `\t`, "\r", `\r`)
	return q + r.Replace(s) + q
}
