package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/easyrider/dataset"
)

// Kinds of field problems
const (
	KindMissing = "missing"
	KindFormat  = "format"
)

const maxExamples = 3

// FieldCount holds the counters of one checked field.
type FieldCount struct {
	Field    string   `json:"field" yaml:"field"`
	Missing  int      `json:"missing" yaml:"missing"`
	Format   int      `json:"format" yaml:"format"`
	Examples []string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Errors returns missing + format.
func (c FieldCount) Errors() int { return c.Missing + c.Format }

// Result is the accumulator of one validation pass.
type Result struct {
	Fields []FieldCount `json:"fields" yaml:"fields"`
}

// NewResult returns zeroed counters for the given rules.
func NewResult(rules []FieldRule) *Result {
	r := &Result{Fields: make([]FieldCount, 0, len(rules))}
	for _, rule := range rules {
		r.Fields = append(r.Fields, FieldCount{Field: rule.Field})
	}
	return r
}

// Add records one problem for a field, keeping up to three offending values.
func (r *Result) Add(field, kind, example string) {
	for i := range r.Fields {
		c := &r.Fields[i]
		if c.Field != field {
			continue
		}
		switch kind {
		case KindMissing:
			c.Missing++
		case KindFormat:
			c.Format++
			if len(c.Examples) < maxExamples {
				c.Examples = append(c.Examples, example)
			}
		}
		return
	}
}

// Total returns the sum of all field errors.
func (r *Result) Total() int {
	n := 0
	for _, c := range r.Fields {
		n += c.Errors()
	}
	return n
}

// Field returns the counters of one field.
func (r *Result) Field(name string) (FieldCount, bool) {
	for _, c := range r.Fields {
		if c.Field == name {
			return c, true
		}
	}
	return FieldCount{}, false
}

// Validator runs the checked rules over a dataset.
type Validator struct {
	v     *validator.Validate
	rules []FieldRule
}

// New creates a validator with the format tags registered.
func New() (*Validator, error) {
	v := validator.New()
	if err := registerFormats(v); err != nil {
		return nil, fmt.Errorf("register formats: %w", err)
	}
	return &Validator{v: v, rules: CheckedRules()}, nil
}

// Validate checks every record and returns a new Result.
//
// A value that renders empty counts as missing when the field is required and is never
// a format error. A non-empty value that fails its format counts as a format error.
func (val *Validator) Validate(ds *dataset.Dataset) *Result {
	res := NewResult(val.rules)
	for _, stop := range ds.Stops() {
		for _, rule := range val.rules {
			s := stop.Field(rule.Field).String()
			if s == "" {
				if rule.Required {
					res.Add(rule.Field, KindMissing, "")
				}
				continue
			}
			if rule.Format != "" && val.v.Var(s, rule.Format) != nil {
				res.Add(rule.Field, KindFormat, s)
			}
		}
	}
	return res
}
