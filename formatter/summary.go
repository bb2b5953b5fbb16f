package formatter

import (
	"github.com/theoremus-urban-solutions/easyrider/report"
	"github.com/theoremus-urban-solutions/easyrider/validation"
)

// Report identifiers
const (
	ReportValidation  = "validation"
	ReportLines       = "lines"
	ReportStops       = "stops"
	ReportArrival     = "arrival"
	ReportOnDemand    = "on_demand"
	ReportStartFinish = "start_finish"
)

// AllReports lists every report identifier.
var AllReports = []string{
	ReportValidation, ReportLines, ReportStops, ReportArrival, ReportOnDemand, ReportStartFinish,
}

// DefaultReports is the default execution order.
var DefaultReports = []string{
	ReportValidation, ReportLines, ReportStops, ReportArrival, ReportOnDemand,
}

// Summary collects the results of one run. Only executed reports are set.
type Summary struct {
	RunID       string `json:"run_id" yaml:"run_id"`
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Records     int    `json:"records" yaml:"records"`

	// Order is the order reports were executed in
	Order []string `json:"reports" yaml:"reports"`

	Validation  *ValidationSummary         `json:"validation,omitempty" yaml:"validation,omitempty"`
	Lines       []report.LineCount         `json:"lines,omitempty" yaml:"lines,omitempty"`
	Stops       *report.StopClassification `json:"stops,omitempty" yaml:"stops,omitempty"`
	Arrival     *report.ArrivalReport      `json:"arrival,omitempty" yaml:"arrival,omitempty"`
	OnDemand    *report.OnDemandReport     `json:"on_demand,omitempty" yaml:"on_demand,omitempty"`
	StartFinish *report.StartFinishReport  `json:"start_finish,omitempty" yaml:"start_finish,omitempty"`
}

// ValidationSummary holds the field counters with their total.
type ValidationSummary struct {
	Total  int                     `json:"total" yaml:"total"`
	Fields []validation.FieldCount `json:"fields" yaml:"fields"`
}

// NewValidationSummary builds the summary of a validation result.
func NewValidationSummary(res *validation.Result) *ValidationSummary {
	return &ValidationSummary{Total: res.Total(), Fields: res.Fields}
}
