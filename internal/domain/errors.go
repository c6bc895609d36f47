package domain

import "errors"

var (
	// ErrEmptyDocument is returned when a document contains no <upc> elements.
	// It is a benign skip, not a rejection: printed, never written to the skip log.
	ErrEmptyDocument = errors.New("no upc elements found")

	// ErrTooManyUPCs is returned when the pre-parse estimate exceeds the hard cap
	ErrTooManyUPCs = errors.New("too many upc elements")

	// ErrTooManyRows is returned when the flattened row count exceeds the sheet ceiling
	ErrTooManyRows = errors.New("row count exceeds sheet ceiling")

	// ErrFileTooLarge is returned when a document exceeds the configured byte limit
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrMalformedXML is returned when a document cannot be parsed as a tree
	ErrMalformedXML = errors.New("malformed xml")

	// ErrUnexpected is returned when traversal fails for any unclassified reason
	ErrUnexpected = errors.New("unexpected conversion failure")

	// ErrWriteFailed is returned when a converted table cannot be written out
	ErrWriteFailed = errors.New("output write failed")
)

// rejections are the error classes recorded in the skip log
var rejections = []error{
	ErrTooManyUPCs,
	ErrTooManyRows,
	ErrFileTooLarge,
	ErrMalformedXML,
	ErrUnexpected,
	ErrWriteFailed,
}

// IsRejection reports whether err is a per-file rejection the batch recovers
// from. ErrEmptyDocument is deliberately excluded, as is a skip-log write
// failure, which must halt the batch.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
