package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedInput is returned when the payload is not a JSON array of objects.
var ErrMalformedInput = errors.New("malformed input")

// ParseError describes where parsing stopped.
type ParseError struct {
	// Index of the offending array element, -1 when the payload as a whole is invalid
	Index int
	// Offset is the byte offset reported by the JSON decoder, 0 when unknown
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("malformed input: element %d: %v", e.Index, e.Err)
	}
	if e.Offset > 0 {
		return fmt.Sprintf("malformed input at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("malformed input: %v", e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrMalformedInput, e.Err} }

// ParseReader reads the whole payload from r and parses it.
func ParseReader(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of stop objects. Unknown keys are ignored.
func Parse(data []byte) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var elems []json.RawMessage
	if err := dec.Decode(&elems); err != nil {
		return nil, &ParseError{Index: -1, Offset: offsetOf(err, dec), Err: err}
	}
	if elems == nil {
		// top-level null decodes without error
		return nil, &ParseError{Index: -1, Err: errors.New("payload is not an array")}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Index: -1, Offset: dec.InputOffset(), Err: errors.New("unexpected data after array")}
	}

	stops := make([]StopRecord, 0, len(elems))
	for i, raw := range elems {
		rec, err := decodeRecord(raw)
		if err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}
		stops = append(stops, rec)
	}
	return &Dataset{stops: stops}, nil
}

func decodeRecord(raw json.RawMessage) (StopRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return StopRecord{}, errors.New("element is not an object")
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return StopRecord{}, err
	}
	field := func(name string) Value {
		v, ok := obj[name]
		if !ok {
			return Value{}
		}
		return NewValue(v)
	}
	return StopRecord{
		BusID:    field(FieldBusID),
		StopID:   field(FieldStopID),
		StopName: field(FieldStopName),
		NextStop: field(FieldNextStop),
		StopType: field(FieldStopType),
		ATime:    field(FieldATime),
	}, nil
}

func offsetOf(err error, dec *json.Decoder) int64 {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return syn.Offset
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		return typ.Offset
	}
	return dec.InputOffset()
}
