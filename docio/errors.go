package docio

import "errors"

// Sentinel errors surfaced by this package. Callers match them with
// errors.Is; call sites wrap them with fmt.Errorf("%w: ...") for
// additional context.
var (
	// ErrMalformedDocument indicates the document does not conform to
	// the three-field graph/weighted/canvas schema.
	ErrMalformedDocument = errors.New("docio: malformed document")

	// ErrVariantMismatch indicates the weighted flag disagrees with the
	// cell values actually present in the graph rows (a true cell in a
	// weighted document, or any numeric cell in an unweighted
	// document).
	ErrVariantMismatch = errors.New("docio: weighted flag does not match graph cells")

	// ErrIO wraps an underlying filesystem error encountered while
	// reading or writing a document.
	ErrIO = errors.New("docio: io error")
)
