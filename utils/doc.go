// Package utils provides internal utility functions for the easyrider tools.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Clock (HH:MM) parsing and formatting
//   - Timestamp helpers for report metadata
package utils
