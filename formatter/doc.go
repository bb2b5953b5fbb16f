// Package formatter renders a run summary.
//
// This package is organized into:
// - summary.go: the Summary document and report identifiers
// - text.go: the line-oriented text output
// - json.go: JSON and YAML serialization
//
// The text output is written manually so every line matches the expected layout
// byte for byte, name lists use the bracketed quoted notation ['A', 'B'].
package formatter
