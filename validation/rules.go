package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/easyrider/dataset"
)

// Validator tags for the field formats
const (
	TagStopName = "stopname"
	TagStopType = "stoptype"
	TagClock    = "clock"
)

var (
	stopNamePattern = regexp.MustCompile(`^([A-Z][a-zA-Z]*\s+)+(Road|Avenue|Boulevard|Street)$`)
	stopTypePattern = regexp.MustCompile(`^(S|F|O)$`)
	clockPattern    = regexp.MustCompile(`^[0-2][0-9]:[0-5][0-9]$`)
)

// FieldRule describes how one payload field is validated.
type FieldRule struct {
	Field    string
	Required bool
	// Format is a validator tag applied to non-empty values
	Format string
	// Checked fields take part in the validation report
	Checked bool
}

// Rules is the rule table, in payload field order.
var Rules = []FieldRule{
	{Field: dataset.FieldBusID, Required: true, Format: "numeric"},
	{Field: dataset.FieldStopID, Required: true, Format: "numeric"},
	{Field: dataset.FieldStopName, Required: true, Format: TagStopName, Checked: true},
	{Field: dataset.FieldNextStop, Required: true, Format: "numeric"},
	{Field: dataset.FieldStopType, Required: false, Format: TagStopType, Checked: true},
	{Field: dataset.FieldATime, Required: true, Format: TagClock, Checked: true},
}

// CheckedRules returns the rules that are reported, in table order.
func CheckedRules() []FieldRule {
	var out []FieldRule
	for _, r := range Rules {
		if r.Checked {
			out = append(out, r)
		}
	}
	return out
}

func registerFormats(v *validator.Validate) error {
	formats := map[string]*regexp.Regexp{
		TagStopName: stopNamePattern,
		TagStopType: stopTypePattern,
		TagClock:    clockPattern,
	}
	for tag, re := range formats {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}
	return nil
}
