package formatter

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type reportBuilder struct{}

func newReportBuilder() *reportBuilder { return &reportBuilder{} }

// NewReportBuilder creates a new builder for formatting run summaries
func NewReportBuilder() *reportBuilder {
	return newReportBuilder()
}

// BuildJSON serializes a summary to indented JSON
func (rb *reportBuilder) BuildJSON(s *Summary) ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// BuildYAML serializes a summary to YAML
func (rb *reportBuilder) BuildYAML(s *Summary) ([]byte, error) {
	return yaml.Marshal(s)
}

// Build renders the summary in the requested format
func (rb *reportBuilder) Build(format string, s *Summary) ([]byte, error) {
	switch format {
	case FormatText, "":
		return rb.BuildText(s), nil
	case FormatJSON:
		return rb.BuildJSON(s)
	case FormatYAML:
		return rb.BuildYAML(s)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
