// Package validation checks stop records field by field and tallies the problems.
//
// Every field of a stop record has a rule (required or not, and a format), but only
// stop_name, stop_type and a_time are checked and reported. The other rules are kept in
// the table for reference. Formats are registered as go-playground/validator tags:
//
//	stopname  one or more capitalised words, then Road|Avenue|Boulevard|Street
//	stoptype  S, F or O
//	clock     HH:MM with the hour in [0-2][0-9] and minutes in [0-5][0-9]
//
// The clock format is a pattern check only, "29:59" passes.
//
// Each call to Validate returns a fresh Result, counters are never shared between runs.
package validation
