// Package record defines the value model for fetched records.
//
// A Value is a tagged union of scalars (string, number, bool, null) and
// nested ordered objects. Records decode from JSON with their key order
// intact, because the column schema and the expansion panel both follow the
// order in which fields appear in the source document.
package record
