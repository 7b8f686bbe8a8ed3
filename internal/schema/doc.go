// Package schema infers table columns from the shape of fetched records.
//
// Columns come from the first record only: every field whose value is a
// scalar (null included) becomes a sortable column, and object-valued
// fields are left to the expansion panel. Later records with missing or
// extra fields are rendered against that sample schema without complaint.
package schema
