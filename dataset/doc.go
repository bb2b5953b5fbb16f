/*
Package dataset parses a bus-line payload into an ordered list of stop records.

The payload is a single JSON array of objects, one object per stop:

	[
	    {"bus_id": 128, "stop_id": 1, "stop_name": "Prospekt Avenue",
	     "next_stop": 3, "stop_type": "S", "a_time": "08:12"},
	    ...
	]

Field values are kept verbatim. Numbers keep their literal JSON text, strings are not
trimmed and nothing is coerced to the type the field is supposed to have. Type and format
checks are a separate pass (see package validation).

# Usage

	ds, err := dataset.ParseReader(os.Stdin)
	if errors.Is(err, dataset.ErrMalformedInput) {
	    // not JSON, or not an array of objects
	}
	for _, stop := range ds.Stops() {
	    fmt.Println(stop.Line(), stop.StopName.String())
	}

The Dataset is read-only once parsed. Every report works on the same value.
*/
package dataset
