package dataset

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field names as they appear in the payload
const (
	FieldBusID    = "bus_id"
	FieldStopID   = "stop_id"
	FieldStopName = "stop_name"
	FieldNextStop = "next_stop"
	FieldStopType = "stop_type"
	FieldATime    = "a_time"
)

// Stop types
const (
	StopTypeStart    = "S"
	StopTypeFinish   = "F"
	StopTypeOnDemand = "O"
	StopTypeRegular  = ""
)

// Value is a JSON scalar taken verbatim from the payload.
type Value struct {
	raw     any
	present bool
}

// NewValue wraps a decoded JSON value. Numbers should be json.Number.
func NewValue(raw any) Value {
	return Value{raw: raw, present: true}
}

// Present reports whether the key existed in the object, even if null.
func (v Value) Present() bool { return v.present }

// Raw returns the decoded value (nil when absent or null).
func (v Value) Raw() any { return v.raw }

// String renders the value the way it was written. Absent and null render as "".
func (v Value) String() string {
	switch t := v.raw.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// IsEmpty reports whether the value renders as an empty string.
func (v Value) IsEmpty() bool { return v.String() == "" }

// MarshalJSON writes the verbatim value back out.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.raw == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v.raw)
}

// StopRecord is one stop of one bus line
type StopRecord struct {
	BusID    Value `json:"bus_id"`
	StopID   Value `json:"stop_id"`
	StopName Value `json:"stop_name"`
	NextStop Value `json:"next_stop"`
	StopType Value `json:"stop_type"`
	ATime    Value `json:"a_time"`
}

// Field returns the value of a payload field by name.
func (r StopRecord) Field(name string) Value {
	switch name {
	case FieldBusID:
		return r.BusID
	case FieldStopID:
		return r.StopID
	case FieldStopName:
		return r.StopName
	case FieldNextStop:
		return r.NextStop
	case FieldStopType:
		return r.StopType
	case FieldATime:
		return r.ATime
	}
	return Value{}
}

// Line returns the line key of the record: bus_id with surrounding spaces removed,
// and integers written in canonical form ("0128" -> "128").
func (r StopRecord) Line() string {
	s := strings.TrimSpace(r.BusID.String())
	if n, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(n)
	}
	return s
}

// Name returns stop_name as written.
func (r StopRecord) Name() string { return r.StopName.String() }

// Type returns stop_type as written ("" for regular stops).
func (r StopRecord) Type() string { return r.StopType.String() }

// Dataset is the ordered list of records in payload order.
type Dataset struct {
	stops []StopRecord
}

// New builds a Dataset from records already in memory.
func New(stops []StopRecord) *Dataset {
	cp := make([]StopRecord, len(stops))
	copy(cp, stops)
	return &Dataset{stops: cp}
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.stops) }

// Stops returns the records in payload order. Callers must not modify the slice.
func (d *Dataset) Stops() []StopRecord { return d.stops }
