package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/easyrider/dataset"
)

func mustParse(t *testing.T, payload string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Parse([]byte(payload))
	require.NoError(t, err)
	return ds
}

func mustValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func TestCheckedRules(t *testing.T) {
	var fields []string
	for _, r := range CheckedRules() {
		fields = append(fields, r.Field)
	}
	assert.Equal(t, []string{"stop_name", "stop_type", "a_time"}, fields)
	assert.Len(t, Rules, 6)
}

func TestValidate_WellFormed(t *testing.T) {
	ds := mustParse(t, `[
		{"bus_id": 128, "stop_id": 1, "stop_name": "Prospekt Avenue", "next_stop": 3, "stop_type": "S", "a_time": "08:12"},
		{"bus_id": 128, "stop_id": 3, "stop_name": "Elm Street", "next_stop": 5, "stop_type": "", "a_time": "08:19"},
		{"bus_id": 128, "stop_id": 5, "stop_name": "Fifth Avenue", "next_stop": 7, "stop_type": "O", "a_time": "08:25"},
		{"bus_id": 128, "stop_id": 7, "stop_name": "Sesame Street", "next_stop": 0, "stop_type": "F", "a_time": "08:37"}
	]`)

	res := mustValidator(t).Validate(ds)
	assert.Equal(t, 0, res.Total())
	require.Len(t, res.Fields, 3)
	for _, c := range res.Fields {
		assert.Zero(t, c.Missing, c.Field)
		assert.Zero(t, c.Format, c.Field)
	}
}

func TestValidate_StopName(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantMissing int
		wantFormat  int
	}{
		{name: "single word and suffix", value: `"Elm Street"`},
		{name: "several words", value: `"Bourbon Grand Street"`},
		{name: "boulevard", value: `"Sunset Boulevard"`},
		{name: "road", value: `"Pilotow Road"`},
		{name: "empty", value: `""`, wantMissing: 1},
		{name: "null", value: `null`, wantMissing: 1},
		{name: "lowercase word", value: `"elm Street"`, wantFormat: 1},
		{name: "missing suffix", value: `"Elm"`, wantFormat: 1},
		{name: "suffix only", value: `"Street"`, wantFormat: 1},
		{name: "unknown suffix", value: `"Elm Lane"`, wantFormat: 1},
		{name: "abbreviated suffix", value: `"Sunset Boulevard Av."`, wantFormat: 1},
		{name: "number", value: `5`, wantFormat: 1},
	}
	v := mustValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := mustParse(t, `[{"bus_id": 1, "stop_name": `+tt.value+`, "stop_type": "", "a_time": "08:00"}]`)
			res := v.Validate(ds)
			c, ok := res.Field(dataset.FieldStopName)
			require.True(t, ok)
			assert.Equal(t, tt.wantMissing, c.Missing)
			assert.Equal(t, tt.wantFormat, c.Format)
			assert.Equal(t, tt.wantMissing+tt.wantFormat, res.Total())
		})
	}
}

func TestValidate_StopType(t *testing.T) {
	tests := []struct {
		name       string
		record     string
		wantFormat int
	}{
		{name: "start", record: `"stop_type": "S"`},
		{name: "finish", record: `"stop_type": "F"`},
		{name: "on demand", record: `"stop_type": "O"`},
		{name: "regular", record: `"stop_type": ""`},
		{name: "absent", record: `"bus_id": 1`},
		{name: "null", record: `"stop_type": null`},
		{name: "lowercase", record: `"stop_type": "s"`, wantFormat: 1},
		{name: "two letters", record: `"stop_type": "SF"`, wantFormat: 1},
		{name: "unknown letter", record: `"stop_type": "A"`, wantFormat: 1},
		{name: "number", record: `"stop_type": 1`, wantFormat: 1},
	}
	v := mustValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := mustParse(t, `[{"stop_name": "Elm Street", "a_time": "08:00", `+tt.record+`}]`)
			res := v.Validate(ds)
			c, _ := res.Field(dataset.FieldStopType)
			assert.Zero(t, c.Missing, "stop_type is optional")
			assert.Equal(t, tt.wantFormat, c.Format)
		})
	}
}

func TestValidate_ArrivalTime(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantMissing int
		wantFormat  int
	}{
		{name: "morning", value: `"08:12"`},
		{name: "midnight", value: `"00:00"`},
		{name: "pattern only hour", value: `"29:59"`},
		{name: "empty", value: `""`, wantMissing: 1},
		{name: "single digit hour", value: `"8:12"`, wantFormat: 1},
		{name: "minutes over 59", value: `"08:60"`, wantFormat: 1},
		{name: "hour over 29", value: `"30:00"`, wantFormat: 1},
		{name: "seconds", value: `"08:12:00"`, wantFormat: 1},
		{name: "text", value: `"noon"`, wantFormat: 1},
		{name: "number", value: `812`, wantFormat: 1},
	}
	v := mustValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := mustParse(t, `[{"stop_name": "Elm Street", "stop_type": "", "a_time": `+tt.value+`}]`)
			c, _ := v.Validate(ds).Field(dataset.FieldATime)
			assert.Equal(t, tt.wantMissing, c.Missing)
			assert.Equal(t, tt.wantFormat, c.Format)
		})
	}
}

func TestValidate_UncheckedFieldsIgnored(t *testing.T) {
	ds := mustParse(t, `[{"bus_id": "", "stop_id": "abc", "next_stop": null,
		"stop_name": "Elm Street", "stop_type": "", "a_time": "08:00"}]`)
	res := mustValidator(t).Validate(ds)
	assert.Equal(t, 0, res.Total())
	_, ok := res.Field(dataset.FieldBusID)
	assert.False(t, ok)
}

func TestValidate_TotalsAndMutualExclusion(t *testing.T) {
	ds := mustParse(t, `[
		{"bus_id": 128, "stop_name": "Prospekt Av.", "stop_type": "S", "a_time": "08:12"},
		{"bus_id": 128, "stop_name": "", "stop_type": "", "a_time": "8:19"},
		{"bus_id": 256, "stop_name": "Sunset Boulevard", "stop_type": "A", "a_time": ""},
		{"bus_id": 256, "stop_name": "bourbon street", "stop_type": "FF", "a_time": "09:75"}
	]`)

	res := mustValidator(t).Validate(ds)

	name, _ := res.Field(dataset.FieldStopName)
	assert.Equal(t, 1, name.Missing)
	assert.Equal(t, 2, name.Format)
	assert.Equal(t, []string{"Prospekt Av.", "bourbon street"}, name.Examples)

	typ, _ := res.Field(dataset.FieldStopType)
	assert.Equal(t, 0, typ.Missing)
	assert.Equal(t, 2, typ.Format)

	at, _ := res.Field(dataset.FieldATime)
	assert.Equal(t, 1, at.Missing)
	assert.Equal(t, 2, at.Format)

	sum := 0
	for _, c := range res.Fields {
		assert.Equal(t, c.Missing+c.Format, c.Errors())
		sum += c.Errors()
	}
	assert.Equal(t, sum, res.Total())
	assert.Equal(t, 8, res.Total())
}

func TestValidate_FreshResultPerRun(t *testing.T) {
	ds := mustParse(t, `[{"stop_name": "", "stop_type": "", "a_time": ""}]`)
	v := mustValidator(t)

	first := v.Validate(ds)
	second := v.Validate(ds)
	assert.Equal(t, 2, first.Total())
	assert.Equal(t, 2, second.Total())
}

func TestResult_AddKeepsThreeExamples(t *testing.T) {
	res := NewResult(CheckedRules())
	for _, ex := range []string{"a", "b", "c", "d"} {
		res.Add(dataset.FieldATime, KindFormat, ex)
	}
	res.Add("unknown", KindMissing, "")

	c, _ := res.Field(dataset.FieldATime)
	assert.Equal(t, 4, c.Format)
	assert.Equal(t, []string{"a", "b", "c"}, c.Examples)
	assert.Equal(t, 4, res.Total())
}
