// Package docio saves and loads session documents: a graph matrix, its
// weighted/unweighted variant flag, and a UI-opaque canvas blob,
// serialized as the three top-level JSON fields "graph", "weighted",
// and "canvas".
//
// The codec treats canvas as opaque: it is decoded into a map and
// re-encoded verbatim with its keys in numeric order, never
// interpreted. Marshaling uses github.com/goccy/go-json, a drop-in
// encoding/json-compatible implementation, since this package is the
// one place the document format is JSON end to end.
//
// Errors:
//
//	ErrMalformedDocument - the document does not conform to the schema.
//	ErrVariantMismatch   - the weighted flag disagrees with the matrix cells.
//	ErrIO                - an underlying filesystem error occurred.
package docio
