// Package event loads named date ranges and matches capture dates
// against them.
//
// The definition list is ordered and order is semantically significant:
// when ranges overlap, the first matching entry wins and scanning stops.
package event
